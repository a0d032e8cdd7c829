package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/config"
	"github.com/GlebRadaev/pawction/internal/handlers"
	"github.com/GlebRadaev/pawction/internal/notify"
	"github.com/GlebRadaev/pawction/internal/pg"
	"github.com/GlebRadaev/pawction/internal/repo"
	"github.com/GlebRadaev/pawction/internal/scheduler"
	"github.com/GlebRadaev/pawction/internal/service"
	"github.com/GlebRadaev/pawction/pkg/auth"
	"github.com/GlebRadaev/pawction/pkg/clock"
	"github.com/GlebRadaev/pawction/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	sched     *scheduler.Scheduler
	publisher *notify.Publisher
	pool      *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New(cfg *config.Config) *Application {
	return &Application{
		cfg:   cfg,
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	err := logger.InitLogger(a.cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	a.publisher = getPublisher(ctx, a.cfg)
	a.repo = repo.New(conn)
	a.srv = service.New(a.cfg, a.repo, txManager, a.publisher, clock.New())
	a.api = handlers.New(a.srv, auth.NewJWTService(a.cfg.JWTSecret))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if a.cfg.SchedulerEnabled {
		a.sched = scheduler.New(a.cfg, a.srv.AuctionSweeper, a.srv.SettlementSweeper)
		if err = a.startScheduler(ctx); err != nil {
			return fmt.Errorf("can't start scheduler: %w", err)
		}
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		if err := a.publisher.Close(); err != nil {
			zap.L().Error("failed to close redis client", zap.Error(err))
		}
	}()

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// getPublisher connects to Redis when an address is configured. Without one,
// or when Redis is down at start-up, auction events are not published.
func getPublisher(ctx context.Context, cfg *config.Config) *notify.Publisher {
	if cfg.RedisAddress == "" {
		zap.L().Info("redis address not set, auction events disabled")
		return notify.New(nil)
	}
	client, err := notify.Connect(ctx, cfg.RedisAddress)
	if err != nil {
		zap.L().Error("redis unavailable, auction events disabled", zap.Error(err))
		return notify.New(nil)
	}
	return notify.New(client)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) error {
	if err := a.sched.Start(ctx); err != nil {
		return err
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.sched.Stop()
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.pool != nil {
		a.pool.Close()
	}

	return appErr
}
