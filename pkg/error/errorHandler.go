package error

import (
	"movie_tracker/configs"
	"movie_tracker/pkg/logger"

	"github.com/getsentry/sentry-go"
)

func SaveError(message string, err error) {
	if configs.GetConfigs().PrintErrors {
		if err != nil {
			logger.Get().Error(message, "error", err)
		} else {
			logger.Get().Error(message)
		}
	}

	if err == nil {
		sentry.CaptureMessage(message)
	} else {
		sentry.CaptureException(err)
	}
}
