package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"family-health-api/internal/config"
	"family-health-api/internal/handler"
	"family-health-api/internal/health"
	"family-health-api/internal/job"
	"family-health-api/internal/logging"
	"family-health-api/internal/middleware"
	"family-health-api/internal/router"
	"family-health-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logging.New(cfg.Log)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// database
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	log.Info("connected to postgres")

	st := store.New(pool)
	if err := st.Migrate(ctx); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Info("migrations applied")

	var wg sync.WaitGroup
	goRun := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	checker := health.New(st, log)
	goRun(func() { checker.Run(ctx, cfg.HealthInterval) })

	rl := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)
	goRun(func() { rl.Run(ctx) })

	goRun(func() { job.NewReminder(cfg.ReminderInterval, log).Run(ctx) })

	// grpc health service
	var grpcSrv *grpc.Server
	if cfg.HealthPort != "" {
		lis, err := net.Listen("tcp", ":"+cfg.HealthPort)
		if err != nil {
			log.Fatalf("listen health: %v", err)
		}
		grpcSrv = grpc.NewServer()
		checker.Register(grpcSrv)
		go func() {
			log.Infof("grpc health on :%s", cfg.HealthPort)
			if err := grpcSrv.Serve(lis); err != nil {
				log.Errorf("grpc: %v", err)
			}
		}()
	}

	h := handler.New(st, cfg.JWTSecret, log)
	httpSrv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.New(h, router.Options{
			Secret:     cfg.JWTSecret,
			CORSOrigin: cfg.CORSOrigin,
			Limiter:    rl,
			Log:        log,
			Ready:      checker.Ready,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Infof("Server running on %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http: %v", err)
			stop()
		}
	}()

	// graceful shutdown
	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("http shutdown: %v", err)
	}
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	wg.Wait()
}
