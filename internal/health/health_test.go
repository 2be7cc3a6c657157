package health_test

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"family-health-api/internal/health"
)

type fakeDB struct{ down atomic.Bool }

func (f *fakeDB) Ping(context.Context) error {
	if f.down.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func dial(t *testing.T, c *health.Checker) healthpb.HealthClient {
	t.Helper()
	lis := bufconn.Listen(1 << 16)
	srv := grpc.NewServer()
	c.Register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return healthpb.NewHealthClient(conn)
}

func status(t *testing.T, hc healthpb.HealthClient) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	resp, err := hc.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	return resp.Status
}

func TestCheckerReflectsDatabase(t *testing.T) {
	log, _ := test.NewNullLogger()
	db := &fakeDB{}
	c := health.New(db, log)
	hc := dial(t, c)

	if got := status(t, hc); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("before first check: got %v", got)
	}

	c.Check(context.Background())
	if !c.Ready() {
		t.Error("expected ready")
	}
	if got := status(t, hc); got != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("db up: got %v", got)
	}

	db.down.Store(true)
	c.Check(context.Background())
	if c.Ready() {
		t.Error("expected not ready")
	}
	if got := status(t, hc); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("db down: got %v", got)
	}
}

func TestCheckerLogsTransitions(t *testing.T) {
	log, hook := test.NewNullLogger()
	db := &fakeDB{}
	c := health.New(db, log)

	c.Check(context.Background())
	c.Check(context.Background())
	db.down.Store(true)
	c.Check(context.Background())

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 transition logs, got %d", len(entries))
	}
	if entries[1].Level != logrus.WarnLevel {
		t.Errorf("expected warn on outage, got %v", entries[1].Level)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	log, _ := test.NewNullLogger()
	c := health.New(&fakeDB{}, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for !c.Ready() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if !c.Ready() {
		t.Fatal("never became ready")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if c.Ready() {
		t.Error("expected not ready after shutdown")
	}
}
