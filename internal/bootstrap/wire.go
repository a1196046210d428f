package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/identity"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/progress"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/eventlog"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/infrastructure/db/migrations"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/infrastructure/db/postgres"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/infrastructure/memory"
	rabbitmq_pub "github.com/baechuer/real-time-ressys/services/learner-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/infrastructure/progressapi"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/infrastructure/redis"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/infrastructure/security"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/logger"
	http_handlers "github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/handlers"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/middleware"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/response"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (*sql.DB, error)

	Migrate func(ctx context.Context, db *sql.DB) error

	// Optional; nil disables the roster cache.
	NewRedis func(addr, password string, db int) *redis.Client

	NewPublisher func(url, exchange string) (Publisher, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

// Publisher carries every domain event the services emit.
type Publisher interface {
	identity.EventPublisher
	progress.EventPublisher
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	if cfg.DBMigrate && deps.Migrate != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := deps.Migrate(ctx, db)
		cancel()
		if err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
		logger.Logger.Info().Msg("migrations applied")
	}

	// 2) repos
	accountRepo := postgres.NewAccountRepo(db)
	rosterRepo := postgres.NewRosterRepo(db)

	// seed (dev only)
	if cfg.IsDev() {
		postgres.SeedRoster(context.Background(), rosterRepo)
	}

	// 3) redis roster cache (best-effort)
	var roster identity.RosterLookup = rosterRepo
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

		if err := c.Ping(context.Background()); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; roster cache disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			roster = redis.NewCachedRoster(rosterRepo, c, cfg.RosterCacheTTL)
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 4) publisher
	var pub Publisher = memory.NewNoopPublisher()
	if cfg.RabbitURL == "" {
		logger.Logger.Info().Msg("RABBIT_URL not set; using noop publisher")
	} else {
		p, err := deps.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		switch {
		case err == nil:
			pub = p
		case cfg.IsDev():
			logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
		default:
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	if c, ok := pub.(interface{ Close() error }); ok {
		cleanupFns = append(cleanupFns, func() { _ = c.Close() })
	}

	// 5) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt issuer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	issuer := security.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)

	// 6) external progress system
	remote := progressapi.NewClient(cfg.ProgressAPIURL, cfg.ProgressAPIKey, cfg.ProgressAPITimeout)

	// 7) services
	identitySvc := identity.NewService(roster, accountRepo, hasher, issuer, pub)
	progressSvc := progress.NewService(accountRepo, remote, pub)

	// 8) handlers + middleware
	events := eventlog.New(logger.Logger)
	identityH := http_handlers.NewIdentityHandler(identitySvc, events)
	progressH := http_handlers.NewProgressHandler(progressSvc, events)
	healthH := http_handlers.NewHealthHandler(db)

	// 9) router
	mux, err := deps.NewRouter(router.Deps{
		Health:      healthH,
		Identity:    identityH,
		Progress:    progressH,
		RequestIDMW: middleware.RequestID,
		AuthMW:      middleware.Auth(issuer, response.WriteError),
		CORSMW: middleware.CORS(middleware.CORSOptions{
			Enabled:        cfg.CORSEnabled,
			AllowedOrigins: cfg.CORSAllowedOrigins,
			MaxAge:         cfg.CORSMaxAge,
		}),
		MetricsMW: middleware.Metrics,
		Metrics:   promhttp.Handler(),
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 10) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		Migrate:    migrations.Up,
		NewRedis:   redis.New,
		NewPublisher: func(url, exchange string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(url, exchange)
		},
		NewRouter: router.New,
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
