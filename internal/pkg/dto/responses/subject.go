package responses

type Subject struct {
	ID                 string `json:"id"`
	SubjectCode        string `json:"subjectCode"`
	SubjectDescription string `json:"subjectDescription"`
	Units              int    `json:"units"`
	Department         string `json:"department,omitempty"`
}
