package models

import (
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

// Schedule is a committed class session. StartTime and EndTime are stored
// in canonical zero-padded "HH:MM"; ordering and overlap decisions are
// always made on parsed minute-of-day values, never on these strings.
type Schedule struct {
	ID           string `bson:"_id,omitempty"`
	SubjectCode  string `bson:"subjectCode"`
	InstructorID string `bson:"instructorId"`
	Section      string `bson:"section"`
	Day          string `bson:"day"`
	StartTime    string `bson:"startTime"`
	EndTime      string `bson:"endTime"`
	Room         string `bson:"room"`
}

// ApplyPartialUpdate overwrites only the fields present in the request.
// Times are assigned by the caller after canonicalization.
func (s *Schedule) ApplyPartialUpdate(request *requests.UpdateSchedule) {
	if request.SubjectCode != nil {
		s.SubjectCode = *request.SubjectCode
	}
	if request.InstructorID != nil {
		s.InstructorID = *request.InstructorID
	}
	if request.Section != nil {
		s.Section = *request.Section
	}
	if request.Day != nil {
		s.Day = *request.Day
	}
	if request.Room != nil {
		s.Room = *request.Room
	}
}

func (s *Schedule) ConvertToBsonM() bson.M {
	return bson.M{
		"subjectCode":  s.SubjectCode,
		"instructorId": s.InstructorID,
		"section":      s.Section,
		"day":          s.Day,
		"startTime":    s.StartTime,
		"endTime":      s.EndTime,
		"room":         s.Room,
	}
}

func (s *Schedule) ConvertToResponse() *responses.Schedule {
	return &responses.Schedule{
		ID:           s.ID,
		SubjectCode:  s.SubjectCode,
		InstructorID: s.InstructorID,
		Section:      s.Section,
		Day:          s.Day,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Room:         s.Room,
	}
}
