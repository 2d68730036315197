package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/Aryan1591/TravelBuddy-Notification-Service/cmd/fx/controllers_fx"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/cmd/fx/db_fx"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/cmd/fx/mail_fx"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/cmd/fx/notification_fx"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/cmd/fx/post_fx"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/cmd/fx/proxy_fx"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/api/controllers"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		post_fx.Module,
		proxy_fx.Module,
		mail_fx.Module,
		notification_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(notificationController *controllers.NotificationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, notificationController)

	return r
}

func RegisterRoutes(r *gin.Engine, notificationController *controllers.NotificationController) {

	r.GET("/fetchPostsAndUpdate", notificationController.FetchPostsAndUpdate)
	r.GET("/health", notificationController.Health)
}
