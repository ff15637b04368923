package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "jobs-board-backend/models/db"
)

type Provider interface {
	GetByID(id int) (*dbmodels.User, error)
	Create(rec dbmodels.User) (id int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id int) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error getting user")
	}
	return &rec, nil
}

func (i impl) Create(rec dbmodels.User) (id int, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return 0, errors.Wrap(err, "error creating user")
	}
	return rec.ID, nil
}
