package logging

import (
	"net"
	"os"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"

	"family-health-api/internal/config"
)

const appName = "family-health-api"

// New builds the process logger. Hooks that fail to attach are reported on
// the logger itself and skipped.
func New(c config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stdout

	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	if err != nil {
		logger.Warnf("unknown log level %q, using info", c.Level)
	}

	if c.ElasticURL != "" {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{c.ElasticURL},
		})
		if err != nil {
			logger.Warnf("elastic client: %v", err)
		} else if hook, err := elogrus.NewAsyncElasticHook(client, appName, lvl, c.ElasticIndex); err != nil {
			logger.Warnf("elastic hook: %v", err)
		} else {
			logger.Hooks.Add(hook)
		}
	}

	if c.LogstashAddr != "" {
		conn, err := net.Dial("udp", c.LogstashAddr)
		if err != nil {
			logger.Warnf("logstash: %v", err)
		} else {
			logger.Hooks.Add(logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": appName})))
		}
	}

	return logger
}
