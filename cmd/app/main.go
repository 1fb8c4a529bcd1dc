package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"smartinclusion/cmd/fx/account_fx"
	"smartinclusion/cmd/fx/config_fx"
	"smartinclusion/cmd/fx/controllers_fx"
	"smartinclusion/cmd/fx/db_fx"
	"smartinclusion/cmd/fx/location_fx"
	"smartinclusion/cmd/fx/realtime_fx"
	"smartinclusion/cmd/fx/scheme_fx"
	"smartinclusion/internal/api/controllers"
	"smartinclusion/pkg/config"
	"smartinclusion/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		location_fx.Module,
		scheme_fx.Module,
		realtime_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
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

func ProvideRouter(
	cfg *config.Config,
	accountController *controllers.AccountController,
	locationController *controllers.LocationController,
	schemeController *controllers.SchemeController,
	realtimeController *controllers.RealtimeController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg, accountController, locationController, schemeController, realtimeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	accountController *controllers.AccountController,
	locationController *controllers.LocationController,
	schemeController *controllers.SchemeController,
	realtimeController *controllers.RealtimeController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.POST("/register/user", accountController.RegisterUser)
	auth.POST("/register/volunteer", accountController.RegisterVolunteer)
	auth.POST("/login", accountController.Login)

	authSelf := auth.Group("", middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authSelf.PUT("/user/:id", accountController.UpdateUserProfile)
	authSelf.PUT("/volunteer/:id", accountController.UpdateVolunteerProfile)
	authSelf.GET("/me", accountController.Me)

	locations := r.Group("/locations", middleware.JWTAuthMiddleware(cfg.JWTSecret))
	locations.GET("", locationController.List)
	locations.GET("/visible", locationController.ListVisible)

	volunteerOnly := locations.Group("", middleware.RequireRole("volunteer"))
	volunteerOnly.POST("", locationController.Create)
	volunteerOnly.PUT("/:id", locationController.Update)
	volunteerOnly.DELETE("/:id", locationController.Delete)

	r.GET("/schemes", schemeController.List)

	r.GET("/ws", realtimeController.Serve)
}
