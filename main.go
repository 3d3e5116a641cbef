package main

import (
	"log"
	"net/http"
	"os"

	"travelmore/config"
	"travelmore/constants"
	"travelmore/jobs"
	"travelmore/models"
	"travelmore/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Destination{},
		&models.Stay{},
		&models.Amenity{},
		&models.Accommodation{},
		&models.Booking{},
		&models.StayFrame{},
		&models.AccommodationFrame{},
		&models.RatingStar{},
		&models.RatingStay{},
		&models.RatingDestination{},
		&models.ReviewStay{},
		&models.ReviewDestination{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}

	seedRatingStars()
}

func seedRatingStars() {
	for value := constants.RatingStarMin; value <= constants.RatingStarMax; value++ {
		config.DB.Where(models.RatingStar{Value: value}).FirstOrCreate(&models.RatingStar{Value: value})
	}
}

func listRoomIDs() ([]uint, error) {
	var ids []uint
	if err := config.DB.Model(&models.Accommodation{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not loaded, falling back to the environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	config.InitWebSocket(router, m)

	engine := routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	jobs.SetAvailabilityRefresher(engine, listRoomIDs)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
