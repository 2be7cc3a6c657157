package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Logger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		})
		if id := c.GetString(UserIDKey); id != "" {
			entry = entry.WithField("user_id", id)
		}

		switch s := c.Writer.Status(); {
		case s >= 500:
			entry.Error("request")
		case s >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
