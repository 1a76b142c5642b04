package responses

type Schedule struct {
	ID           string `json:"id"`
	SubjectCode  string `json:"subjectCode"`
	InstructorID string `json:"instructorId"`
	Section      string `json:"section"`
	Day          string `json:"day"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Room         string `json:"room"`
}
