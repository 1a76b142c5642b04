package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingScheduleIDKey   = "schedule_id"
	LoggingSubjectCodeKey  = "subject_code"
	LoggingInstructorIDKey = "instructor_id"
	LoggingUserIDKey       = "user_id"
	LoggingDayKey          = "day"
	LoggingLockKey         = "lock_key"
	LoggingQueueKey        = "queue"
)
