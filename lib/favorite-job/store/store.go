package favoritejobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "jobs-board-backend/models/db"
)

type Provider interface {
	// ListJobIDs returns the ids from jobIDs the user marked as favorite
	ListJobIDs(userID int, jobIDs []int) ([]int, error)
	Exists(userID, jobID int) (bool, error)
	// Toggle removes the favorite if present, adds it otherwise
	Toggle(userID, jobID int) (favorited bool, err error)
	ListByUser(userID int) ([]dbmodels.FavoriteJob, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListJobIDs(userID int, jobIDs []int) ([]int, error) {
	result := []int{}
	if len(jobIDs) == 0 {
		return result, nil
	}
	err := i.db.Model(dbmodels.FavoriteJob{}).
		Where("user_id = ?", userID).
		Where("job_id in (?)", jobIDs).
		Pluck("job_id", &result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error getting favorite job ids")
	}
	return result, nil
}

func (i impl) Exists(userID, jobID int) (bool, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.FavoriteJob{}).
		Where("user_id = ?", userID).
		Where("job_id = ?", jobID).
		Count(&rowCount).
		Error
	if err != nil {
		return false, errors.Wrap(err, "error checking favorite job")
	}
	return rowCount > 0, nil
}

func (i impl) Toggle(userID, jobID int) (favorited bool, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		deleted := tx.
			Where("user_id = ?", userID).
			Where("job_id = ?", jobID).
			Delete(&dbmodels.FavoriteJob{})
		if deleted.Error != nil {
			return errors.Wrap(deleted.Error, "error removing favorite job")
		}
		if deleted.RowsAffected > 0 {
			favorited = false
			return nil
		}
		rec := dbmodels.FavoriteJob{
			UserID: userID,
			JobID:  jobID,
		}
		// a concurrent toggle may have inserted the pair already
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&rec).
			Error
		if err != nil {
			return errors.Wrap(err, "error adding favorite job")
		}
		favorited = true
		return nil
	})
	return favorited, err
}

func (i impl) ListByUser(userID int) ([]dbmodels.FavoriteJob, error) {
	list := []dbmodels.FavoriteJob{}
	err := i.db.Model(dbmodels.FavoriteJob{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error getting favorite jobs")
	}
	return list, nil
}
