package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/campusclubs/clubdeck/internal/domain/service"
	"github.com/campusclubs/clubdeck/pkg/logger"
)

// App represents the main application structure.
type App struct {
	serviceProvider *serviceProvider
}

// NewApp initializes the application and its dependencies.
func NewApp(ctx context.Context) (*App, error) {
	a := &App{}

	err := a.initDeps(ctx)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	return a, nil
}

// Run starts the engine: if a session identity is already present the deck is
// seeded for it, then the app waits for a shutdown signal. Swipe and matches
// operations are driven through the service ports by the surrounding UI.
func (a *App) Run() {
	defer a.gracefulShutdown()

	logger.Log.Info("Clubdeck starting")

	ctx := context.Background()

	userID, err := a.serviceProvider.SessionStore().CurrentUser(ctx)
	if err != nil {
		logger.Log.Errorf("failed to read session identity: %v", err)
	}

	if userID != 0 {
		if err := a.serviceProvider.DeckService().Load(ctx, userID); err != nil && !errors.Is(err, service.ErrNoSession) {
			logger.Log.Errorf("failed to seed deck for user %d: %v", userID, err)
		} else {
			logger.Log.Infof(
				"deck seeded for user %d: %d candidates, state %s",
				userID,
				a.serviceProvider.DeckService().Remaining(),
				a.serviceProvider.DeckService().State(),
			)
		}
	} else {
		logger.Log.Info("no session identity yet, deck seeding deferred")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Log.Infof("Received signal %v, starting graceful shutdown...", sig)
}

// gracefulShutdown handles cleanup of all resources
func (a *App) gracefulShutdown() {
	logger.Log.Info("Starting graceful shutdown...")

	if a.serviceProvider != nil {
		// Let in-flight vote submissions resolve before tearing anything down.
		if a.serviceProvider.swipeService != nil {
			logger.Log.Info("Draining in-flight votes...")
			a.serviceProvider.swipeService.Drain()
			logger.Log.Info("Votes drained")
		}

		if a.serviceProvider.redisClient != nil {
			if err := a.serviceProvider.redisClient.Close(); err != nil {
				logger.Log.Errorf("Error closing redis connection: %v", err)
			}
		}

		if a.serviceProvider.db != nil {
			logger.Log.Info("Closing database connection...")
			sqlDB, err := a.serviceProvider.db.DB()
			if err != nil {
				logger.Log.Errorf("Failed to get underlying sql.DB: %v", err)
			} else {
				if err := sqlDB.Close(); err != nil {
					logger.Log.Errorf("Error closing database connection: %v", err)
				} else {
					logger.Log.Info("Database connection closed")
				}
			}
		}
	}

	logger.Log.Info("Graceful shutdown completed")

	// Close logger resources last
	if err := logger.Cleanup(); err != nil {
		// Can't log this error as logger is closing
		_ = err
	}
}

// initDeps initializes application dependencies
func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initServiceProvider,
		a.initLogger,
	}

	for _, f := range inits {
		err := f(ctx)
		if err != nil {
			return fmt.Errorf("init deps: %w", err)
		}
	}

	return nil
}

func (a *App) initServiceProvider(_ context.Context) error {
	a.serviceProvider = newServiceProvider()
	return nil
}

func (a *App) initLogger(_ context.Context) error {
	return logger.Init(logger.Config{
		Debug:        a.serviceProvider.cfg.Logger.Debug(),
		TimeLocation: a.serviceProvider.cfg.Logger.TimeLocation(),
		LogToFile:    a.serviceProvider.cfg.Logger.LogToFile(),
		LogsDir:      a.serviceProvider.cfg.Logger.LogsDir(),
	})
}
