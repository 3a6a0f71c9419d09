package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
	"github.com/DennisWallner/HostDesk/internal/pkg/cache"
	"github.com/DennisWallner/HostDesk/internal/pkg/database"
	"github.com/DennisWallner/HostDesk/internal/pkg/env"
	metrics "github.com/DennisWallner/HostDesk/internal/pkg/metrics/counter"
	"github.com/DennisWallner/HostDesk/internal/pkg/reminder"
	"github.com/DennisWallner/HostDesk/internal/pkg/router"
)

func main() {
	app, scheduler := NewApplication()

	// flush sync counters (Redis -> DB) every 30 seconds
	stopFlusher := metrics.StartFlusher(30 * time.Second)

	// graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		scheduler.Stop()
		stopFlusher()
		_ = app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	if err != nil {
		log.Fatal(err)
	}
}

func NewApplication() (*fiber.App, *reminder.Scheduler) {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	if err := models.LoadSettings(database.GetDB()); err != nil {
		log.Printf("Could not load settings: %v", err)
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		AppName: "HostDesk",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New())

	// ROUTER
	router.InstallRouter(app)

	// invoice reminder scheduler
	scheduler := reminder.NewScheduler(database.GetDB())
	scheduler.Start()

	return app, scheduler
}
