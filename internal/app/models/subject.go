package models

import (
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type Subject struct {
	ID                 string `bson:"_id,omitempty"`
	SubjectCode        string `bson:"subjectCode"`
	SubjectDescription string `bson:"subjectDescription"`
	Units              int    `bson:"units"`
	Department         string `bson:"department,omitempty"`
}

func (s *Subject) ApplyPartialUpdate(request *requests.UpdateSubject) {
	if request.SubjectCode != nil {
		s.SubjectCode = *request.SubjectCode
	}
	if request.SubjectDescription != nil {
		s.SubjectDescription = *request.SubjectDescription
	}
	if request.Units != nil {
		s.Units = *request.Units
	}
	if request.Department != nil {
		s.Department = *request.Department
	}
}

func (s *Subject) ConvertToBsonM() bson.M {
	return bson.M{
		"subjectCode":        s.SubjectCode,
		"subjectDescription": s.SubjectDescription,
		"units":              s.Units,
		"department":         s.Department,
	}
}

func (s *Subject) ConvertToResponse() *responses.Subject {
	return &responses.Subject{
		ID:                 s.ID,
		SubjectCode:        s.SubjectCode,
		SubjectDescription: s.SubjectDescription,
		Units:              s.Units,
		Department:         s.Department,
	}
}
