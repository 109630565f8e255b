package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/khs61254/app-caravan/internal/auth"
	"github.com/khs61254/app-caravan/internal/config"
	"github.com/khs61254/app-caravan/internal/geo"
	"github.com/khs61254/app-caravan/internal/handler"
	"github.com/khs61254/app-caravan/internal/middleware"
	"github.com/khs61254/app-caravan/internal/notification"
	"github.com/khs61254/app-caravan/internal/repository/memory"
	"github.com/khs61254/app-caravan/internal/repository/postgres"
	"github.com/khs61254/app-caravan/internal/router"
	"github.com/khs61254/app-caravan/internal/scheduler"
	"github.com/khs61254/app-caravan/internal/service"
	"github.com/khs61254/app-caravan/internal/service/ports"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"caravan",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	caravanRepo, reservationRepo, userRepo, err := app.initStores()
	if err != nil {
		return nil, fmt.Errorf("init stores: %w", err)
	}

	if err = app.initServices(caravanRepo, reservationRepo, userRepo); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStores() (ports.CaravanRepo, ports.ReservationRepo, ports.UserRepo, error) {
	if a.cfg.Storage.Engine == "memory" {
		a.log.Info("using in-memory storage engine")
		return memory.NewCaravanRepo(), memory.NewReservationRepo(), memory.NewUserRepo(), nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, nil, nil, fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return nil, nil, nil, fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return postgres.NewCaravanRepo(db), postgres.NewReservationRepo(db), postgres.NewUserRepo(db), nil
}

func (a *App) initServices(
	caravanRepo ports.CaravanRepo,
	reservationRepo ports.ReservationRepo,
	userRepo ports.UserRepo,
) error {
	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	oracleOpts := []geo.Option{}
	if a.cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		oracleOpts = append(oracleOpts, geo.WithCache(a.redis, a.cfg.Redis.CacheTTL))
	}
	oracle := geo.NewGoogleMaps(a.cfg.Google.MapsAPIKey, a.cfg.Google.Timeout, a.log, oracleOpts...)

	tokens := auth.NewManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	caravanService := service.NewCaravanService(caravanRepo, userRepo, reservationRepo, oracle, a.log)
	reservationService := service.NewReservationService(reservationRepo, caravanRepo, userRepo, notifier, a.log)
	userService := service.NewUserService(userRepo, tokens)

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(caravanService, reservationService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(tokens),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.RateLimit(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      cors.AllowAll().Handler(r),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
