package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker reports database reachability over the standard grpc health
// service and to HTTP probes.
type Checker struct {
	srv   *health.Server
	db    Pinger
	log   logrus.FieldLogger
	ready atomic.Bool
}

func New(db Pinger, log logrus.FieldLogger) *Checker {
	c := &Checker{srv: health.NewServer(), db: db, log: log}
	c.srv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return c
}

func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c.srv)
}

func (c *Checker) Ready() bool { return c.ready.Load() }

// Check pings the database once and updates the serving status.
func (c *Checker) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := c.db.Ping(ctx)
	ok := err == nil
	if c.ready.Swap(ok) != ok {
		if ok {
			c.log.Info("database reachable")
		} else {
			c.log.WithError(err).Warn("database unreachable")
		}
	}

	st := healthpb.HealthCheckResponse_SERVING
	if !ok {
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.srv.SetServingStatus("", st)
}

// Run checks every interval until ctx is done, then marks everything
// not serving.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	c.Check(ctx)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			c.ready.Store(false)
			c.srv.Shutdown()
			return
		case <-t.C:
			c.Check(ctx)
		}
	}
}
