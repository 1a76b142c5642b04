package requests

type CreateSchedule struct {
	SubjectCode  string `json:"subjectCode" validate:"required"`
	InstructorID string `json:"instructorId" validate:"required"`
	Section      string `json:"section" validate:"required"`
	Day          string `json:"day" validate:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	StartTime    string `json:"startTime" validate:"required,clock_time"`
	EndTime      string `json:"endTime" validate:"required,clock_time"`
	Room         string `json:"room" validate:"required"`
}

// UpdateSchedule carries a partial update: nil fields keep their stored
// value. Pointers distinguish "absent" from "empty".
type UpdateSchedule struct {
	SubjectCode  *string `json:"subjectCode" validate:"omitempty,min=1"`
	InstructorID *string `json:"instructorId" validate:"omitempty,min=1"`
	Section      *string `json:"section" validate:"omitempty,min=1"`
	Day          *string `json:"day" validate:"omitempty,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	StartTime    *string `json:"startTime" validate:"omitempty,clock_time"`
	EndTime      *string `json:"endTime" validate:"omitempty,clock_time"`
	Room         *string `json:"room" validate:"omitempty,min=1"`
}

// TouchesConflictScope reports whether the update carries any of the four
// fields that define the conflict scope. Pure room/section/subjectCode
// edits never trigger a conflict re-check.
func (r *UpdateSchedule) TouchesConflictScope() bool {
	return r.InstructorID != nil || r.Day != nil || r.StartTime != nil || r.EndTime != nil
}

type ListSchedules struct {
	InstructorID string
	Room         string
	Day          string `validate:"omitempty,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Skip         int    `validate:"gte=0"`
	Limit        int    `validate:"gte=0"`
}
