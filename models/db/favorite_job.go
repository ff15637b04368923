package dbmodels

// FavoriteJob marks an external job as favorite for a user. Job content is never stored.
type FavoriteJob struct {
	BaseModel
	UserID int   `gorm:"index;uniqueIndex:idx_favorite_jobs_user_job;not null"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	JobID  int   `gorm:"uniqueIndex:idx_favorite_jobs_user_job;not null"`
}
