package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"merchflow/internal/config"
	"merchflow/internal/database"
	"merchflow/internal/domain/auth"
	"merchflow/internal/domain/camp"
	"merchflow/internal/domain/chat"
	"merchflow/internal/domain/lead"
	"merchflow/internal/domain/notification"
	"merchflow/internal/domain/order"
	"merchflow/internal/domain/organization"
	"merchflow/internal/domain/staff"
	"merchflow/internal/jobs"
	"merchflow/internal/middleware"
	jwtsvc "merchflow/internal/pkg/jwt"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&lead.Lead{},
		&order.Order{},
		&organization.Organization{},
		&staff.Member{},
		&camp.Camp{},
		&camp.Registration{},
		&chat.Channel{},
		&chat.Membership{},
		&chat.Message{},
		&notification.Notification{},
	); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := auth.NewRepository(db)
	leadRepo := lead.NewRepository(db)
	orderRepo := order.NewRepository(db)
	orgRepo := organization.NewRepository(db)
	staffRepo := staff.NewRepository(db)
	campRepo := camp.NewRepository(db)
	chatRepo := chat.NewRepository(db)
	notifRepo := notification.NewRepository(db)

	notifService := notification.NewService(notifRepo)
	authService := auth.NewService(userRepo, j)
	orderService := order.NewService(orderRepo, authService, notifService)
	leadService := lead.NewService(leadRepo, orderService, notifService, cfg.VerificationWindow)
	orgService := organization.NewService(orgRepo)
	staffService := staff.NewService(staffRepo)
	campService := camp.NewService(campRepo)
	chatService := chat.NewService(chatRepo)

	hub := chat.NewHub()

	authHandler := auth.NewHandler(authService)
	leadHandler := lead.NewHandler(leadService)
	orderHandler := order.NewHandler(orderService)
	orgHandler := organization.NewHandler(orgService)
	staffHandler := staff.NewHandler(staffService)
	campHandler := camp.NewHandler(campService)
	chatHandler := chat.NewHandler(chatService, hub)
	notifHandler := notification.NewHandler(notifService)

	runner := jobs.NewRunner(leadService, campService)
	if err := runner.Start(cfg.CronSpec); err != nil {
		log.Fatal(err)
	}
	defer runner.Stop()

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		auth.RegisterPublicRoutes(v1, authHandler)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			auth.RegisterProtectedRoutes(protected, authHandler)
			lead.RegisterRoutes(protected, leadHandler)
			order.RegisterRoutes(protected, orderHandler)
			organization.RegisterRoutes(protected, orgHandler)
			staff.RegisterRoutes(protected, staffHandler)
			camp.RegisterRoutes(protected, campHandler)
			chat.RegisterRoutes(protected, chatHandler)
			notification.RegisterRoutes(protected, notifHandler)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				auth.RegisterAdminRoutes(admin, authHandler)
				lead.RegisterAdminRoutes(admin, leadHandler)
			}
		}
	}

	log.Printf("api: listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
