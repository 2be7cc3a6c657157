package logging_test

import (
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"family-health-api/internal/config"
	"family-health-api/internal/logging"
)

func TestNewLevelAndFormat(t *testing.T) {
	l := logging.New(config.LogConfig{Level: "debug", Format: "json"})
	if l.GetLevel() != logrus.DebugLevel {
		t.Errorf("level: got %v", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected json formatter, got %T", l.Formatter)
	}
}

func TestNewUnknownLevelFallsBack(t *testing.T) {
	l := logging.New(config.LogConfig{Level: "loud"})
	if l.GetLevel() != logrus.InfoLevel {
		t.Errorf("level: got %v", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("expected text formatter, got %T", l.Formatter)
	}
}

func TestNewLogstashHook(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp listen: %v", err)
	}
	defer pc.Close()

	l := logging.New(config.LogConfig{Level: "info", LogstashAddr: pc.LocalAddr().String()})
	if n := len(l.Hooks[logrus.InfoLevel]); n != 1 {
		t.Fatalf("expected 1 hook, got %d", n)
	}

	l.WithField("user", "u1").Info("hello")
	pc.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 1024)
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n == 0 {
		t.Error("empty logstash payload")
	}
}
