package initializers

import (
	"jobs-board-backend/config"
	"jobs-board-backend/fiberlog"
	xlsexport "jobs-board-backend/lib/export/xls"
	jobshandler "jobs-board-backend/lib/jobs"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	ApplyLogLevel(config.Conf.App.LogLevel)
	InitDBConnection()
	InitJobListings()
	xlsexport.NewHandler()
	jobshandler.NewHandler(config.Conf.JobsAPI.MaxParallel)
}
