package workers

import "errors"

var (
	ErrNilActivityService = errors.New("activity service is nil")
	ErrInvalidSchedule    = errors.New("invalid cron schedule")
	ErrInvalidRetention   = errors.New("retention must be positive")
)
