package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "jobs-board-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "error creating table users")
	}
	if err := DB.AutoMigrate(&dbmodels.FavoriteJob{}); err != nil {
		return errors.Wrap(err, "error creating table favorite_jobs")
	}
	log.Info("migrations finished")
	return nil
}
