package constvars

type ContextKey string

const (
	CONTEXT_SESSION_DATA_KEY ContextKey = "sessionData"
	CONTEXT_REQUEST_ID_KEY   ContextKey = "requestID"
)

// Role enumeration is fixed; there is no student role.
const (
	RoleAdmin       = "admin"
	RoleChairperson = "program_chairperson"
	RoleInstructor  = "instructor"
)

const (
	DepartmentBSCS        = "BSCS"
	DepartmentBSEDEnglish = "BSED-English"
	DepartmentBSEDSS      = "BSED-SS"
	DepartmentBEED        = "BEED"
	DepartmentBSBAHR      = "BSBA-HR"
)

const (
	DayMon = "Mon"
	DayTue = "Tue"
	DayWed = "Wed"
	DayThu = "Thu"
	DayFri = "Fri"
	DaySat = "Sat"
	DaySun = "Sun"
)

const (
	MongoCollectionUsers     = "users"
	MongoCollectionSubjects  = "subjects"
	MongoCollectionSchedules = "schedules"
)

const (
	// ListDefaultLimit is applied when the client omits or exceeds the limit
	// query parameter.
	ListDefaultLimit = 100

	ScheduleLockKeyFormat = "schedule-lock:%s:%s"
)

const (
	ScheduleEventCreated = "schedule.created"
	ScheduleEventUpdated = "schedule.updated"
	ScheduleEventDeleted = "schedule.deleted"
)
