// @title           PDRIMS HTTP Service API
// @version         1.0
// @description     Barangay disaster relief household and aid distribution ledger

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"pdrims-http-service/internal/app/routes"
	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/domain/services/container"
	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/internal/infrastructure/database"
	Logger "pdrims-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const programName = "pdrims"

const shutdownTimeout = 15 * time.Second

// appConfig is loaded once by setup before any command runs.
var appConfig *config.Config

func main() {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Barangay relief ledger HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context())
		},
	}
	rootCmd.AddCommand(serveCommand(), migrateCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context())
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the schema, seed the default admin, and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, _, err := openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()
			Logger.Info("Migration finished")
			return nil
		},
	}
}

// setup loads .env and configures logging for every command.
func setup() error {
	if err := Logger.SetupLogger(); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	if err := godotenv.Load(); err != nil {
		Logger.Warning("Could not load .env file: %v", err)
	} else {
		Logger.Info("Loaded .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := Logger.SetLevel(cfg.LogLevel); err != nil {
		Logger.Warning("Invalid LOG_LEVEL %q, keeping info: %v", cfg.LogLevel, err)
	}
	appConfig = cfg
	return nil
}

// openDatabase connects, migrates, and makes sure an admin exists.
func openDatabase(ctx context.Context) (*database.ConnectionPool, *config.Config, error) {
	cfg := appConfig

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := database.Migrate(pool.GetDB(), cfg.DBMigrationMode); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrate schema: %w", err)
	}

	userService := services.NewUserService(pool.GetDB(), cfg, services.NewAuditService(pool.GetDB(), cfg, nil))
	if err := userService.EnsureAdminExists(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ensure admin exists: %w", err)
	}
	return pool, cfg, nil
}

func serveRun(ctx context.Context) error {
	pool, cfg, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	serviceContainer, err := container.NewServiceContainer(pool.GetDB(), cfg, nil)
	if err != nil {
		return err
	}

	if cfg.EnvType == "SERVER" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRouter(serviceContainer, cfg)

	printSystemInfo(pool)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		Logger.Info("Server listening on http://0.0.0.0:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// printSystemInfo logs pool and runtime details at startup
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("Database pool stats: %+v", stats)
	}

	Logger.Info("CPU cores: %d, goroutines: %d", runtime.NumCPU(), runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("Memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
