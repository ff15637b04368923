package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	usersstore "jobs-board-backend/lib/users/store"
	dbmodels "jobs-board-backend/models/db"
)

type DefaultUser struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SeedDefaultUser makes sure the single user every request acts as exists.
func SeedDefaultUser(user DefaultUser) error {
	store := usersstore.NewInstance(DB)
	rec, err := store.GetByID(user.ID)
	if err != nil {
		return err
	}
	if rec != nil {
		return nil
	}
	logger := log.WithField("user_id", user.ID)
	logger.Info("seeding default user")

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "error hashing default user password")
	}
	_, err = store.Create(dbmodels.User{
		BaseModel: dbmodels.BaseModel{ID: user.ID},
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Password:  string(hash),
	})
	if err != nil {
		return err
	}
	// explicit id bypasses the sequence, move it past the seeded row
	err = DB.Exec("SELECT setval(pg_get_serial_sequence('users', 'id'), GREATEST((SELECT MAX(id) FROM users), 1))").Error
	if err != nil {
		logger.WithError(err).Warn("error syncing users id sequence")
	}
	logger.Info("default user seeded")
	return nil
}
