// Package logger provides a thin wrapper around zerolog used throughout the
// application, plus a Gin middleware that logs each request.
package logger

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available directly.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout, labelled with the given
// service name.
func New(service string) *Logger {
	l := zerolog.New(os.Stdout).With().
		Str("service", service).
		Timestamp().
		Logger()
	return &Logger{l}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// RequestLogger returns a Gin middleware that logs method, path, status,
// latency and client IP for every request.
func (l *Logger) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		evt := l.Info()
		if c.Writer.Status() >= 500 {
			evt = l.Error()
		}
		evt.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}
