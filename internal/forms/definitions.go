package forms

// CafeForm returns the form for adding or editing a cafe. The city_code
// choices must be populated with SetChoices before validating.
func CafeForm() *Form {
	return &Form{
		Fields: []*Field{
			{Name: "name", Label: "Name", Type: Text, Rules: []Rule{Required()}},
			{Name: "description", Label: "Description", Type: TextArea, Optional: true, Rules: []Rule{MinLength(10)}},
			{Name: "url", Label: "URL", Type: Text, Optional: true, Rules: []Rule{ValidURL()}},
			{Name: "address", Label: "Address", Type: Text, Rules: []Rule{Required()}},
			{Name: "city_code", Label: "City", Type: Select},
			{Name: "image_url", Label: "Image", Type: Text, Optional: true, Rules: []Rule{ValidURL(), MaxLength(255)}},
		},
	}
}

// SignupForm returns the form for registering a user.
func SignupForm() *Form {
	return &Form{
		Fields: []*Field{
			{Name: "username", Label: "Username", Type: Text, Rules: []Rule{Required()}},
			{Name: "first_name", Label: "First Name", Type: Text, Rules: []Rule{Required()}},
			{Name: "last_name", Label: "Last Name", Type: Text, Rules: []Rule{Required()}},
			{Name: "description", Label: "Description", Type: TextArea, Optional: true},
			{Name: "email", Label: "Email", Type: Text, Rules: []Rule{Required(), Email()}},
			{Name: "password", Label: "Password", Type: Password, Rules: []Rule{Required(), MinLength(6)}},
			{Name: "image_url", Label: "Image", Type: Text, Optional: true, Rules: []Rule{ValidURL()}},
		},
	}
}

// LoginForm returns the form for logging in.
func LoginForm() *Form {
	return &Form{
		Fields: []*Field{
			{Name: "username", Label: "Username", Type: Text, Rules: []Rule{Required()}},
			{Name: "password", Label: "Password", Type: Password, Rules: []Rule{Required()}},
		},
	}
}

// ProfileEditForm returns the form for editing a user's profile.
func ProfileEditForm() *Form {
	return &Form{
		Fields: []*Field{
			{Name: "first_name", Label: "First Name", Type: Text, Rules: []Rule{Required()}},
			{Name: "last_name", Label: "Last Name", Type: Text, Rules: []Rule{Required()}},
			{Name: "description", Label: "Description", Type: TextArea, Optional: true},
			{Name: "email", Label: "Email", Type: Text, Rules: []Rule{Required(), Email()}},
			{Name: "image_url", Label: "Image", Type: Text, Optional: true, Rules: []Rule{ValidURL()}},
		},
	}
}
