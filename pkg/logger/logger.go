package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init initializes the global logger. Production mode emits structured JSON,
// development mode colored human-readable lines.
func Init(env, level string) {
	var logConfig zap.Config
	if env == "production" {
		logConfig = zap.NewProductionConfig()
	} else {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	logConfig.Level.SetLevel(lvl)

	var err error
	log, err = logConfig.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
}

// Get returns the global logger instance
func Get() *zap.Logger {
	if log == nil {
		var err error
		log, err = zap.NewProduction()
		if err != nil {
			panic("Failed to create fallback logger: " + err.Error())
		}
	}
	return log
}

// Middleware returns a gin middleware that logs each HTTP request.
func Middleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zapcore.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}

		if len(c.Errors) > 0 {
			logger.Error("HTTP request failed", append(fields, zap.String("errors", c.Errors.String()))...)
			return
		}
		logger.Info("HTTP request completed", fields...)
	}
}
