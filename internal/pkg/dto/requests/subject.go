package requests

type CreateSubject struct {
	SubjectCode        string `json:"subjectCode" validate:"required"`
	SubjectDescription string `json:"subjectDescription" validate:"required"`
	Units              int    `json:"units" validate:"required,gt=0"`
	Department         string `json:"department" validate:"omitempty,oneof=BSCS BSED-English BSED-SS BEED BSBA-HR"`
}

type UpdateSubject struct {
	SubjectCode        *string `json:"subjectCode" validate:"omitempty,min=1"`
	SubjectDescription *string `json:"subjectDescription" validate:"omitempty,min=1"`
	Units              *int    `json:"units" validate:"omitempty,gt=0"`
	Department         *string `json:"department" validate:"omitempty,oneof=BSCS BSED-English BSED-SS BEED BSBA-HR"`
}
