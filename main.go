package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"volunteerhub-backend/controller"
	"volunteerhub-backend/dal"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils"
	"volunteerhub-backend/utils/logger"
	"volunteerhub-backend/worker"

	"github.com/gin-gonic/gin"

	_ "volunteerhub-backend/docs"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title VolunteerHub Backend API
// @version 1.0
// @description Volunteer opportunity marketplace backend.
// @description
// @description Opportunities, volunteer profiles with a per-city participation
// @description ledger, city leaderboards, and organization accounts.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5001
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Organization session token. Enter 'Bearer' [space] and then the token from /organizations/login.
func main() {
	Init()

	log := logger.NewLogger(config.LogLevel, config.LogFormat)
	log.Infof("Starting %s v%s (%s)", config.AppName, config.AppVersion, config.AppEnv)

	ctx := context.Background()

	c, err := controller.NewController(ctx, config, log)
	if err != nil {
		log.Fatalf("Failed to initialize controllers: %v", err)
	}

	r := gin.New()
	c.RegisterRoutes(config, r, log)

	// Table bootstrap worker gets its own DB client.
	dbClient, err := dal.NewDynamoDBClient(config, log)
	if err != nil {
		log.Fatalf("Failed to create DB client for bootstrap worker: %v", err)
	}

	bootstrapWorker, err := worker.NewWorker(dbClient, config, log)
	if err != nil {
		log.Fatalf("Failed to create bootstrap worker: %v", err)
	}
	if err := bootstrapWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start bootstrap worker: %v", err)
	}

	srv := &http.Server{
		Addr:         config.AppHost + ":" + config.AppPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	bootstrapWorker.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Forced shutdown: %v", err)
	}
}
