package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// User messages
	UserCreatedSuccess = "user created successfully"
	UserUpdatedSuccess = "user updated successfully"
	UserDeletedSuccess = "user deleted successfully"
	UserGetSuccess     = "get user successfully"
	UserListSuccess    = "get users successfully"

	// Subject messages
	SubjectCreatedSuccess = "subject created successfully"
	SubjectUpdatedSuccess = "subject updated successfully"
	SubjectDeletedSuccess = "subject deleted successfully"
	SubjectGetSuccess     = "get subject successfully"
	SubjectListSuccess    = "get subjects successfully"

	// Schedule messages
	ScheduleCreatedSuccess = "schedule created successfully"
	ScheduleUpdatedSuccess = "schedule updated successfully"
	ScheduleDeletedSuccess = "schedule deleted successfully"
	ScheduleGetSuccess     = "get schedule successfully"
	ScheduleListSuccess    = "get schedules successfully"
)
