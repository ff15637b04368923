package initializers

import (
	log "github.com/sirupsen/logrus"
	"jobs-board-backend/fiberlog"
)

func InitLogger() *fiberlog.Config {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	log.SetLevel(log.InfoLevel)

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	logger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagQuery,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagResBody,
			fiberlog.RequestID,
		},
	}
}

// ApplyLogLevel switches the global logger to the configured level once config is loaded.
func ApplyLogLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithError(err).WithField("level", level).Warn("unknown log level, keeping info")
		return
	}
	log.SetLevel(lvl)
}
