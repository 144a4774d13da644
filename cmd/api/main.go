package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"classroombooking/internal/config"
	"classroombooking/internal/database"
	"classroombooking/internal/middleware"
	"classroombooking/internal/modules/booking"
	"classroombooking/internal/modules/catalog"
	"classroombooking/internal/modules/review"
	"classroombooking/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	classroomRepo := repository.NewClassroomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	policy := cfg.BookingPolicy()

	catalogService := catalog.NewService(classroomRepo, bookingRepo, policy)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, classroomRepo, policy, cfg.SplitHourly)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, classroomRepo)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
