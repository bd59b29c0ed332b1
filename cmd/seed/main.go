// Command seed rebuilds the database schema and loads the initial cities,
// cafes, users and likes, then prefetches the cafes' static maps.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"gocafe/internal/database"
	"gocafe/internal/models"
	"gocafe/internal/repositories"
	"gocafe/internal/services"
	"gocafe/pkg/staticmap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	viper.SetDefault("DATABASE_URL", "cafe.db")
	viper.SetDefault("MAPQUEST_API_KEY", "")
	viper.SetDefault("STATIC_ROOT", "./static")
	viper.AutomaticEnv()

	db, err := database.Open(viper.GetString("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Start from a clean schema.
	err = db.Migrator().DropTable(
		&models.Like{},
		&models.Cafe{},
		&models.User{},
		&models.City{},
	)
	if err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	cityRepo := repositories.NewGORMCityRepository(db)
	cafeRepo := repositories.NewGORMCafeRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	likeRepo := repositories.NewGORMLikeRepository(db)

	mapClient, err := staticmap.NewClient(staticmap.Config{
		APIKey:     viper.GetString("MAPQUEST_API_KEY"),
		StaticRoot: viper.GetString("STATIC_ROOT"),
	})
	if err != nil {
		log.Fatalf("Failed to create map client: %v", err)
	}

	cafeService := services.NewCafeService(cafeRepo, cityRepo, mapClient)
	authService := services.NewAuthService(userRepo)
	likeService := services.NewLikeService(likeRepo, userRepo, cafeRepo)

	// --- Cities ---
	cities := []models.City{
		{Code: "sf", Name: "San Francisco", State: "CA"},
		{Code: "berk", Name: "Berkeley", State: "CA"},
		{Code: "oak", Name: "Oakland", State: "CA"},
	}
	for i := range cities {
		if err := cityRepo.Create(&cities[i]); err != nil {
			log.Fatalf("Failed to seed city %s: %v", cities[i].Code, err)
		}
		log.Printf("Seeded city: %s", cities[i].Name)
	}

	// --- Cafes (maps are fetched as part of the create) ---
	cafes := []models.Cafe{
		{
			Name: "Bernie's Cafe",
			Description: "Serving locals in Noe Valley. A great place to sit" +
				" and write and write exercises.",
			Address:  "3966 24th St",
			CityCode: "sf",
			URL:      "https://www.yelp.com/biz/bernies-san-francisco",
			ImageURL: "https://s3-media4.fl.yelpcdn.com/bphoto/bVCa2JefOCqxQsM6yWrC-A/o.jpg",
		},
		{
			Name: "Perch Coffee",
			Description: "Hip and sleek place to get cardamom lattes when" +
				" biking around Oakland.",
			Address:  "440 Grand Ave",
			CityCode: "oak",
			URL:      "https://perchoffee.com",
			ImageURL: "https://s3-media4.fl.yelpcdn.com/bphoto/0vhzcgkzIUIEPIyL2rF_YQ/o.jpg",
		},
	}
	for i := range cafes {
		if err := cafeService.CreateCafe(&cafes[i]); err != nil {
			log.Fatalf("Failed to seed cafe %s: %v", cafes[i].Name, err)
		}
		log.Printf("Seeded cafe: %s (ID: %d)", cafes[i].Name, cafes[i].ID)
	}

	// --- Users ---
	admin := models.User{
		Username:    "admin",
		FirstName:   "Addie",
		LastName:    "MacAdmin",
		Description: "I am the very model of the modern model administrator.",
		Email:       "admin@test.com",
		Admin:       true,
	}
	if err := authService.Register(&admin, "secret"); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Seeded user: %s (ID: %d)", admin.Username, admin.ID)

	test := models.User{
		Username:    "test",
		FirstName:   "Testy",
		LastName:    "MacTest",
		Description: "I am the ultimate representative user.",
		Email:       "test@test.com",
	}
	if err := authService.Register(&test, "secret"); err != nil {
		log.Fatalf("Failed to seed test user: %v", err)
	}
	log.Printf("Seeded user: %s (ID: %d)", test.Username, test.ID)

	// --- Likes ---
	likes := []struct{ userID, cafeID uint }{
		{test.ID, cafes[0].ID},
		{test.ID, cafes[1].ID},
		{admin.ID, cafes[0].ID},
	}
	for _, l := range likes {
		if err := likeService.Like(l.userID, l.cafeID); err != nil {
			log.Fatalf("Failed to seed like (%d, %d): %v", l.userID, l.cafeID, err)
		}
	}

	log.Println("Seed complete")
}
