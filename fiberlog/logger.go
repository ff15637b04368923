package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	skip := make(map[string]struct{}, len(cfg.Skip))
	for _, path := range cfg.Skip {
		skip[path] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := skip[c.Path()]; ok {
			return c.Next()
		}
		// per request, handlers run concurrently
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		fields := getLogrusFields(ftm, c, d)
		switch cfg.Logger {
		case nil:
			log.WithFields(fields).Info(getMessage(c))
		default:
			entity := cfg.Logger.WithFields(fields)
			if c.Response() != nil && c.Response().StatusCode() >= fiber.StatusBadRequest {
				entity.Warn(getMessage(c))
			} else {
				entity.Info(getMessage(c))
			}
		}

		return err
	}
}

func getMessage(c *fiber.Ctx) string {
	return "api request"
}
