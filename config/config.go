package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr   string `default:"" env:"APP_HOST"`
		Port         int    `default:"3333" env:"APP_PORT"`
		LogLevel     string `default:"info" env:"LOG_LEVEL"`
		AllowOrigins string `default:"http://localhost:3000" env:"APP_ALLOW_ORIGINS"`
		SwaggerFile  string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
		ErrNotifyUrl string `default:"" env:"APP_ERR_NOTIFY_URL"` // 5xx answers are posted here when set
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"jobs-board" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	JobsAPI struct {
		BaseUrl     string `default:"https://yon9jygrt9.execute-api.eu-west-1.amazonaws.com/prod" env:"JOBS_API_BASE_URL"`
		TimeoutSec  int    `default:"10" env:"JOBS_API_TIMEOUT_SEC"`
		MaxParallel int    `default:"10" env:"JOBS_API_MAX_PARALLEL"` // 0 - unbounded
	}
	// there is no authentication, every request acts as this user
	DefaultUser struct {
		ID        int    `default:"1" env:"DEFAULT_USER_ID"`
		FirstName string `default:"Default" env:"DEFAULT_USER_FIRST_NAME"`
		LastName  string `default:"User" env:"DEFAULT_USER_LAST_NAME"`
		Email     string `default:"user@jobs-board.local" env:"DEFAULT_USER_EMAIL"`
		Password  string `default:"changeme" env:"DEFAULT_USER_PASSWORD"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(); err != nil {
			log.WithError(err).Warn("error loading .env file")
		}
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
