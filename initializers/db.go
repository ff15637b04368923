package initializers

import (
	"jobs-board-backend/config"
	"jobs-board-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	err = db.SeedDefaultUser(db.DefaultUser{
		ID:        config.Conf.DefaultUser.ID,
		FirstName: config.Conf.DefaultUser.FirstName,
		LastName:  config.Conf.DefaultUser.LastName,
		Email:     config.Conf.DefaultUser.Email,
		Password:  config.Conf.DefaultUser.Password,
	})
	if err != nil {
		panic(err.Error())
	}
}
