package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelier/internal/config"
	"hotelier/internal/database"
	"hotelier/internal/middleware"
	"hotelier/internal/modules/auth"
	"hotelier/internal/modules/booking"
	"hotelier/internal/modules/catalog"
	"hotelier/internal/modules/report"
	"hotelier/internal/modules/review"
	"hotelier/internal/modules/user"
	jwtsvc "hotelier/internal/pkg/jwt"
	"hotelier/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	bookingServiceRepo := repository.NewBookingServiceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	tokenRepo := repository.NewRevokedTokenRepository(db)
	reportRepo := repository.NewReportRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, tokenRepo, j))
	userHandler := user.NewHandler(user.NewService(userRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(roomTypeRepo, roomRepo, serviceRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, roomRepo, serviceRepo, bookingServiceRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, bookingRepo))
	reportHandler := report.NewHandler(report.NewService(reportRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j, tokenRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)

			// customers
			customer := protected.Group("/")
			customer.Use(middleware.CustomerOnly())
			{
				bookingHandler.RegisterCustomerRoutes(customer)
				reviewHandler.RegisterCustomerRoutes(customer)
			}

			// admins
			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				userHandler.RegisterRoutes(admin)
				catalogHandler.RegisterAdminRoutes(admin)
				bookingHandler.RegisterAdminRoutes(admin)
				reviewHandler.RegisterAdminRoutes(admin)
				reportHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
