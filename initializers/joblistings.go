package initializers

import (
	"time"

	"jobs-board-backend/config"
	joblistingsclient "jobs-board-backend/lib/external-services/joblistings/client"
)

func InitJobListings() {
	joblistingsclient.NewProvider(config.Conf.JobsAPI.BaseUrl, time.Duration(config.Conf.JobsAPI.TimeoutSec)*time.Second)
}
