package app

import (
	"fmt"
	"log"
	"os"
	"time"

	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/campusclubs/clubdeck/internal/adapters/config"
	"github.com/campusclubs/clubdeck/internal/adapters/secondary/httpapi"
	"github.com/campusclubs/clubdeck/internal/adapters/secondary/postgres"
	"github.com/campusclubs/clubdeck/internal/adapters/secondary/redis"
	"github.com/campusclubs/clubdeck/internal/adapters/secondary/static"
	"github.com/campusclubs/clubdeck/internal/domain/entity"
	"github.com/campusclubs/clubdeck/internal/domain/service"
	"github.com/campusclubs/clubdeck/internal/ports/primary"
	"github.com/campusclubs/clubdeck/internal/ports/secondary"
	"github.com/campusclubs/clubdeck/pkg/logger"
)

type serviceProvider struct {
	// Configuration
	cfg *config.Config

	// Infrastructure
	db          *gorm.DB
	redisClient *redis.Client
	apiClient   *httpapi.Client

	// Collaborator ports
	recommendationSource secondary.RecommendationSource
	voteStore            secondary.VoteStore
	matchSource          secondary.MatchSource
	eventSource          secondary.EventSource
	sessionStore         secondary.SessionStore

	// Service layer
	deckService  primary.DeckService
	swipeService primary.SwipeService
	matchService primary.MatchService
}

func newServiceProvider() *serviceProvider {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(fmt.Errorf("failed to create config: %w", err))
	}

	return &serviceProvider{
		cfg: cfg,
	}
}

// Infrastructure dependencies

func (s *serviceProvider) DB() *gorm.DB {
	if s.db == nil {
		var gormConfig *gorm.Config
		if s.cfg.Logger.Debug() {
			newLogger := gormLogger.New(
				log.New(os.Stdout, "\r\n", log.LstdFlags),
				gormLogger.Config{
					SlowThreshold: time.Second,
					LogLevel:      gormLogger.Info,
					Colorful:      true,
				},
			)
			gormConfig = &gorm.Config{
				TranslateError: true,
				Logger:         newLogger,
			}
		} else {
			gormConfig = &gorm.Config{
				TranslateError: true,
			}
		}

		database, err := gorm.Open(postgresDriver.Open(s.cfg.PG.DSN()), gormConfig)
		if err != nil {
			panic(fmt.Errorf("failed to connect to the database: %w", err))
		}
		logger.Log.Info("Successfully connected to the database")

		sqlDB, err := database.DB()
		if err != nil {
			panic(fmt.Errorf("failed to get underlying sql.DB: %w", err))
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(1 * time.Minute)

		if err := database.AutoMigrate(postgres.Migrations...); err != nil {
			panic(fmt.Errorf("failed to migrate database: %w", err))
		}

		s.db = database
	}

	return s.db
}

func (s *serviceProvider) RedisClient() *redis.Client {
	if s.redisClient == nil {
		r, err := redis.New(redis.Options{
			Host:       s.cfg.RedisConf.Host(),
			Port:       s.cfg.RedisConf.Port(),
			Password:   s.cfg.RedisConf.Password(),
			SessionTTL: s.cfg.RedisConf.SessionTTL(),
		})
		if err != nil {
			panic(fmt.Errorf("failed to connect to redis: %w", err))
		}

		s.redisClient = r
	}

	return s.redisClient
}

func (s *serviceProvider) APIClient() *httpapi.Client {
	if s.apiClient == nil {
		s.apiClient = httpapi.NewClient(s.cfg.API.BaseURL(), s.cfg.API.Timeout())
	}

	return s.apiClient
}

// Collaborator ports. The storage mode picks the adapter family: direct
// Postgres or the REST API.

func (s *serviceProvider) RecommendationSource() secondary.RecommendationSource {
	if s.recommendationSource == nil {
		if s.cfg.App.Storage() == config.StorageAPI {
			s.recommendationSource = s.APIClient()
		} else {
			s.recommendationSource = postgres.NewClubRepository(s.DB())
		}
	}

	return s.recommendationSource
}

func (s *serviceProvider) VoteStore() secondary.VoteStore {
	if s.voteStore == nil {
		if s.cfg.App.Storage() == config.StorageAPI {
			s.voteStore = s.APIClient()
		} else {
			s.voteStore = postgres.NewSwipeRepository(s.DB())
		}
	}

	return s.voteStore
}

func (s *serviceProvider) MatchSource() secondary.MatchSource {
	if s.matchSource == nil {
		if s.cfg.App.Storage() == config.StorageAPI {
			s.matchSource = s.APIClient()
		} else {
			s.matchSource = postgres.NewClubRepository(s.DB())
		}
	}

	return s.matchSource
}

func (s *serviceProvider) EventSource() secondary.EventSource {
	if s.eventSource == nil {
		if s.cfg.App.Storage() == config.StorageAPI {
			s.eventSource = s.APIClient()
		} else {
			s.eventSource = postgres.NewEventRepository(s.DB())
		}
	}

	return s.eventSource
}

func (s *serviceProvider) SessionStore() secondary.SessionStore {
	if s.sessionStore == nil {
		s.sessionStore = s.RedisClient().Sessions
	}

	return s.sessionStore
}

// Service layer

func (s *serviceProvider) DeckService() primary.DeckService {
	if s.deckService == nil {
		deckLogger, err := logger.Named("deck")
		if err != nil {
			panic(fmt.Errorf("failed to create deck logger: %w", err))
		}

		var fallback []entity.Club
		if s.cfg.App.FallbackDeck() {
			fallback = static.FallbackClubs()
		}

		s.deckService = service.NewDeckService(
			s.RecommendationSource(),
			fallback,
			deckLogger,
			s.cfg.App.DeckLimit(),
		)
	}

	return s.deckService
}

func (s *serviceProvider) SwipeService() primary.SwipeService {
	if s.swipeService == nil {
		swipeLogger, err := logger.Named("swipe")
		if err != nil {
			panic(fmt.Errorf("failed to create swipe logger: %w", err))
		}

		s.swipeService = service.NewSwipeService(
			s.DeckService(),
			s.VoteStore(),
			swipeLogger,
		)
	}

	return s.swipeService
}

func (s *serviceProvider) MatchService() primary.MatchService {
	if s.matchService == nil {
		matchLogger, err := logger.Named("match")
		if err != nil {
			panic(fmt.Errorf("failed to create match logger: %w", err))
		}

		s.matchService = service.NewMatchService(
			s.MatchSource(),
			s.EventSource(),
			matchLogger,
		)
	}

	return s.matchService
}

// Cfg returns the config
func (s *serviceProvider) Cfg() *config.Config {
	return s.cfg
}
