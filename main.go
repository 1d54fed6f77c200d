package main

import (
	"fmt"
	"os"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/database"
	"blogapi/middleware"
	"blogapi/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "blogapi/docs"
)

// @title Blog API
// @version 1.0
// @description A minimal blog backend with users and posts

// @host localhost:8080
// @BasePath /

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger := zapLogger.Sugar()

	err = run(logger)

	// flush before exiting so startup failures are not lost
	zapLogger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(logger *zap.SugaredLogger) error {
	if err := godotenv.Load(); err != nil {
		logger.Infow("no .env file loaded", "error", err)
	}

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	if err := database.Migrate(db); err != nil {
		logger.Errorw("failed to migrate database", "error", err)
		return err
	}
	logger.Infow("database ready", "driver", cfg.DBDriver)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)

	routes.SetupRoutes(r, userController, postController)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Infow("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Errorw("server exited", "error", err)
		return fmt.Errorf("server exited: %w", err)
	}

	return nil
}
