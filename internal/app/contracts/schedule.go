package contracts

import (
	"context"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error)
	GetScheduleByID(ctx context.Context, scheduleID string) (*responses.Schedule, error)
	UpdateSchedule(ctx context.Context, scheduleID string, request *requests.UpdateSchedule) (*responses.Schedule, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
	ListSchedules(ctx context.Context, request *requests.ListSchedules) ([]*responses.Schedule, error)
}

// ScheduleListFilter narrows List results; zero-valued fields are ignored
// and the remaining ones combine conjunctively.
type ScheduleListFilter struct {
	InstructorID string
	Room         string
	Day          string
	Skip         int
	Limit        int
}

type ScheduleRepository interface {
	Insert(ctx context.Context, schedule *models.Schedule) (scheduleID string, err error)
	FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	FindByInstructorAndDay(ctx context.Context, instructorID, day string) ([]*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	DeleteByID(ctx context.Context, scheduleID string) error
	List(ctx context.Context, filter *ScheduleListFilter) ([]*models.Schedule, error)
}
