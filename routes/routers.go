package routes

import (
	"context"
	"net/http"

	"travelmore/config"
	"travelmore/constants"
	"travelmore/controllers"
	middlewares "travelmore/middleware"
	"travelmore/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) *services.BookingEngine {

	engine := services.NewBookingEngine(services.BookingEngineOptions{DB: db})
	bookingController := controllers.NewBookingController(engine, m)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/auth/refresh", controllers.RefreshToken)

	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)
	v1.PUT("/users", middlewares.AuthMiddleware(), controllers.UpdateUser)
	v1.POST("/users/saved-stays", middlewares.AuthMiddleware(), controllers.SaveStay)

	v1.GET("/destinations", controllers.GetAllDestinations)
	v1.GET("/destinations/:id", controllers.GetDestinationByID)
	v1.POST("/destinations", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateDestination)
	v1.PUT("/destinations", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateDestination)
	v1.DELETE("/destinations/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteDestination)
	v1.POST("/destinations/:id/image", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UploadDestinationImage)
	v1.GET("/destinations/:id/reviews", controllers.GetDestinationReviews)
	v1.POST("/destinations/reviews", middlewares.AuthMiddleware(), controllers.CreateDestinationReview)
	v1.DELETE("/destinations/reviews/:id", middlewares.AuthMiddleware(), controllers.DeleteDestinationReview)
	v1.POST("/destinations/ratings", middlewares.AuthMiddleware(), controllers.RateDestination)

	v1.GET("/stays", controllers.GetAllStays)
	v1.GET("/stays/:id", controllers.GetStayByID)
	v1.POST("/stays", middlewares.AuthMiddleware(constants.RoleLandlord, constants.RoleAdmin), controllers.CreateStay)
	v1.PUT("/stays", middlewares.AuthMiddleware(constants.RoleLandlord, constants.RoleAdmin), controllers.UpdateStay)
	v1.DELETE("/stays/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteStay)
	v1.POST("/stays/frames", middlewares.AuthMiddleware(constants.RoleLandlord, constants.RoleAdmin), controllers.CreateStayFrame)
	v1.POST("/stays/:id/image", middlewares.AuthMiddleware(constants.RoleLandlord, constants.RoleAdmin), controllers.UploadStayImage)
	v1.GET("/stays/:id/reviews", controllers.GetStayReviews)
	v1.POST("/stays/reviews", middlewares.AuthMiddleware(), controllers.CreateStayReview)
	v1.DELETE("/stays/reviews/:id", middlewares.AuthMiddleware(), controllers.DeleteStayReview)
	v1.POST("/stays/ratings", middlewares.AuthMiddleware(), controllers.RateStay)

	v1.GET("/rooms", controllers.GetAllAccommodations)
	v1.GET("/rooms/:id", controllers.GetAccommodationByID)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleLandlord, constants.RoleAdmin), controllers.CreateAccommodation)
	v1.PUT("/rooms", middlewares.AuthMiddleware(constants.RoleLandlord, constants.RoleAdmin), controllers.UpdateAccommodation)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteAccommodation)
	v1.POST("/rooms/frames", middlewares.AuthMiddleware(constants.RoleLandlord, constants.RoleAdmin), controllers.CreateAccommodationFrame)
	v1.POST("/rooms/:id/image", middlewares.AuthMiddleware(constants.RoleLandlord, constants.RoleAdmin), controllers.UploadAccommodationImage)
	v1.GET("/rooms/:id/availability", bookingController.CheckAvailability)

	v1.GET("/amenities", controllers.GetAllAmenities)
	v1.POST("/amenities", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateAmenity)

	v1.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(), bookingController.CreateBooking)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Avatar uploaded",
			"url":     resp.SecureURL,
		})
	})

	return engine
}
