package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apo-analyzer/core/loader"
	"apo-analyzer/core/logger"
	"apo-analyzer/core/middleware/auth"
	"apo-analyzer/core/middleware/rayid"
	"apo-analyzer/core/storage"
	"apo-analyzer/feature/remnant"
	"apo-analyzer/feature/remnant/sites"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "apo-analyzer/docs/swagger"
)

// @title APO Remnant Analyzer API
// @version 1.0
// @description Flags APO remnants in WASON/APOPLUS diagnostic logs.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the analyzer HTTP server",
	Long:  `Starts the HTTP server, the remnant feature and, when enabled, the re-analysis scheduler.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration and logger
		e, err := loadEnv()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := e.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := e.cfg.Validate(); err != nil {
			logg.Fatal("Invalid configuration", zap.Error(err))
		}

		// 2. Database (optional)
		db, _ := e.connectDB(false)
		if db != nil {
			logg.Info("Connected to database", zap.String("driver", e.cfg.Database.Driver))
		}

		// 3. Storage
		store, err := storage.NewClient(e.cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := storage.EnsureBucket(ctx, store, e.cfg.Storage.Bucket, e.cfg.Storage.Region); err != nil {
			logg.Warn("Storage bucket unavailable", zap.Error(err))
		}
		cancel()

		// 4. Features
		table, err := sites.Load(e.cfg.Remnant.SitesFile)
		if err != nil {
			logg.Fatal("Failed to load site table", zap.Error(err))
		}
		feature := remnant.NewFeature(store, e.cfg.Storage.Bucket, logg, db, e.options(table))
		if db != nil {
			if err := feature.Service().EnsureSchema(); err != nil {
				logg.Fatal("Failed to prepare schema", zap.Error(err))
			}
		}

		mgr := loader.NewManager()
		mgr.Register(feature)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             e.cfg.Server.BodyLimit(),
		})

		// RayID first so every later log line carries it.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Scheduler
		var sched *remnant.Scheduler
		switch {
		case !e.cfg.Remnant.SchedulerEnabled:
		case db == nil:
			logg.Warn("Scheduler needs a database, not starting it")
		default:
			sched, err = remnant.NewScheduler(feature.Service(), e.cfg.Remnant.Schedule, logg)
			if err != nil {
				logg.Fatal("Failed to create scheduler", zap.Error(err))
			}
			sched.Start()
		}

		// 6. Serve
		go func() {
			logg.Info("Starting server", zap.String("port", e.cfg.Server.Port))
			if err := app.Listen(":" + e.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if sched != nil {
			sched.Stop()
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
