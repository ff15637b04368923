package dbmodels

type User struct {
	BaseModel
	FirstName string `gorm:"index;type:varchar(255);not null"`
	LastName  string `gorm:"index;type:varchar(255);not null"`
	Email     string `gorm:"uniqueIndex;type:varchar(254);not null"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash
}
