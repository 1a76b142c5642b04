package schedules

import (
	"context"
	"registrar-service/internal/app/contracts"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Insert(ctx context.Context, schedule *models.Schedule) (string, error) {
	args := m.Called(ctx, schedule)
	return args.String(0), args.Error(1)
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	if schedule, ok := args.Get(0).(*models.Schedule); ok {
		return schedule, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockScheduleRepository) FindByInstructorAndDay(ctx context.Context, instructorID, day string) ([]*models.Schedule, error) {
	args := m.Called(ctx, instructorID, day)
	if schedules, ok := args.Get(0).([]*models.Schedule); ok {
		return schedules, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) DeleteByID(ctx context.Context, scheduleID string) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

func (m *MockScheduleRepository) List(ctx context.Context, filter *contracts.ScheduleListFilter) ([]*models.Schedule, error) {
	args := m.Called(ctx, filter)
	if schedules, ok := args.Get(0).([]*models.Schedule); ok {
		return schedules, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, action string, payload interface{}) error {
	args := m.Called(ctx, action, payload)
	return args.Error(0)
}

type noopLocker struct{}

func (noopLocker) Lock(string)   {}
func (noopLocker) Unlock(string) {}

func newTestUsecase(repo contracts.ScheduleRepository, publisher contracts.EventPublisher) contracts.ScheduleUsecase {
	return NewScheduleUsecase(repo, noopLocker{}, publisher, zap.NewNop())
}

func committedSchedule() *models.Schedule {
	return &models.Schedule{
		ID:           "65f000000000000000000001",
		SubjectCode:  "CS101",
		InstructorID: "inst-1",
		Section:      "A",
		Day:          constvars.DayMon,
		StartTime:    "08:00",
		EndTime:      "09:30",
		Room:         "R-204",
	}
}

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and canonicalizes non-padded times", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		repo.On("FindByInstructorAndDay", mock.Anything, "inst-1", constvars.DayMon).Return([]*models.Schedule{}, nil)
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Schedule")).Return("65f000000000000000000002", nil)
		publisher.On("Publish", mock.Anything, constvars.ScheduleEventCreated, mock.Anything).Return(nil)

		response, err := newTestUsecase(repo, publisher).CreateSchedule(ctx, &requests.CreateSchedule{
			SubjectCode:  "CS101",
			InstructorID: "inst-1",
			Section:      "A",
			Day:          constvars.DayMon,
			StartTime:    "9:05",
			EndTime:      "10:00",
			Room:         "R-204",
		})

		assert.NoError(t, err)
		assert.Equal(t, "09:05", response.StartTime)
		assert.Equal(t, "10:00", response.EndTime)
		assert.Equal(t, "65f000000000000000000002", response.ID)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("rejects overlapping interval for same instructor and day", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		repo.On("FindByInstructorAndDay", mock.Anything, "inst-1", constvars.DayMon).
			Return([]*models.Schedule{committedSchedule()}, nil)

		_, err := newTestUsecase(repo, publisher).CreateSchedule(ctx, &requests.CreateSchedule{
			SubjectCode:  "CS102",
			InstructorID: "inst-1",
			Section:      "B",
			Day:          constvars.DayMon,
			StartTime:    "09:00",
			EndTime:      "10:00",
			Room:         "R-301",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientScheduleConflict, customErr.ClientMessage)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("allows touching endpoints", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		repo.On("FindByInstructorAndDay", mock.Anything, "inst-1", constvars.DayMon).
			Return([]*models.Schedule{committedSchedule()}, nil)
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Schedule")).Return("65f000000000000000000003", nil)
		publisher.On("Publish", mock.Anything, constvars.ScheduleEventCreated, mock.Anything).Return(nil)

		_, err := newTestUsecase(repo, publisher).CreateSchedule(ctx, &requests.CreateSchedule{
			SubjectCode:  "CS102",
			InstructorID: "inst-1",
			Section:      "B",
			Day:          constvars.DayMon,
			StartTime:    "09:30",
			EndTime:      "10:30",
			Room:         "R-301",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("allows same interval on another day", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		repo.On("FindByInstructorAndDay", mock.Anything, "inst-1", constvars.DayTue).Return([]*models.Schedule{}, nil)
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Schedule")).Return("65f000000000000000000004", nil)
		publisher.On("Publish", mock.Anything, constvars.ScheduleEventCreated, mock.Anything).Return(nil)

		_, err := newTestUsecase(repo, publisher).CreateSchedule(ctx, &requests.CreateSchedule{
			SubjectCode:  "CS101",
			InstructorID: "inst-1",
			Section:      "A",
			Day:          constvars.DayTue,
			StartTime:    "08:00",
			EndTime:      "09:30",
			Room:         "R-204",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects end time not after start time", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		_, err := newTestUsecase(repo, publisher).CreateSchedule(ctx, &requests.CreateSchedule{
			SubjectCode:  "CS101",
			InstructorID: "inst-1",
			Section:      "A",
			Day:          constvars.DayMon,
			StartTime:    "10:00",
			EndTime:      "10:00",
			Room:         "R-204",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientEndTimeNotAfterStartTime, customErr.ClientMessage)
		repo.AssertNotCalled(t, "FindByInstructorAndDay", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		_, err := newTestUsecase(repo, publisher).CreateSchedule(ctx, &requests.CreateSchedule{
			SubjectCode:  "CS101",
			InstructorID: "inst-1",
			Section:      "A",
			Day:          constvars.DayMon,
			StartTime:    "24:00",
			EndTime:      "25:00",
			Room:         "R-204",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("publish failure does not fail the create", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		repo.On("FindByInstructorAndDay", mock.Anything, "inst-1", constvars.DayMon).Return([]*models.Schedule{}, nil)
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Schedule")).Return("65f000000000000000000005", nil)
		publisher.On("Publish", mock.Anything, constvars.ScheduleEventCreated, mock.Anything).
			Return(exceptions.ErrRabbitMQOpenChannel(nil))

		_, err := newTestUsecase(repo, publisher).CreateSchedule(ctx, &requests.CreateSchedule{
			SubjectCode:  "CS101",
			InstructorID: "inst-1",
			Section:      "A",
			Day:          constvars.DayMon,
			StartTime:    "08:00",
			EndTime:      "09:00",
			Room:         "R-204",
		})

		assert.NoError(t, err)
	})
}

func TestUpdateSchedule(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	t.Run("room-only update skips the conflict check", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)
		existing := committedSchedule()

		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Schedule")).Return(nil)
		publisher.On("Publish", mock.Anything, constvars.ScheduleEventUpdated, mock.Anything).Return(nil)

		response, err := newTestUsecase(repo, publisher).UpdateSchedule(ctx, existing.ID, &requests.UpdateSchedule{
			Room: strPtr("R-500"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "R-500", response.Room)
		repo.AssertNotCalled(t, "FindByInstructorAndDay", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("record does not conflict with itself", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)
		existing := committedSchedule()

		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("FindByInstructorAndDay", mock.Anything, "inst-1", constvars.DayMon).
			Return([]*models.Schedule{existing}, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Schedule")).Return(nil)
		publisher.On("Publish", mock.Anything, constvars.ScheduleEventUpdated, mock.Anything).Return(nil)

		// Re-submitting the stored times must succeed via self-exclusion.
		response, err := newTestUsecase(repo, publisher).UpdateSchedule(ctx, existing.ID, &requests.UpdateSchedule{
			StartTime: strPtr("08:00"),
			EndTime:   strPtr("09:30"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "08:00", response.StartTime)
		repo.AssertExpectations(t)
	})

	t.Run("conflict uses effective values merged from stored record", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)
		existing := committedSchedule()
		other := &models.Schedule{
			ID:           "65f000000000000000000009",
			SubjectCode:  "CS103",
			InstructorID: "inst-1",
			Section:      "C",
			Day:          constvars.DayMon,
			StartTime:    "10:00",
			EndTime:      "11:00",
			Room:         "R-100",
		}

		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("FindByInstructorAndDay", mock.Anything, "inst-1", constvars.DayMon).
			Return([]*models.Schedule{existing, other}, nil)

		// Only startTime moves; the stored day and instructor stay in effect
		// and the shifted interval now collides with the other record.
		_, err := newTestUsecase(repo, publisher).UpdateSchedule(ctx, existing.ID, &requests.UpdateSchedule{
			StartTime: strPtr("10:30"),
			EndTime:   strPtr("11:30"),
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientScheduleConflict, customErr.ClientMessage)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects effective end not after effective start", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)
		existing := committedSchedule()

		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

		// Stored end is 09:30; moving start past it must fail.
		_, err := newTestUsecase(repo, publisher).UpdateSchedule(ctx, existing.ID, &requests.UpdateSchedule{
			StartTime: strPtr("10:00"),
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientEndTimeNotAfterStartTime, customErr.ClientMessage)
	})

	t.Run("unknown schedule returns not found", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		repo.On("FindByID", mock.Anything, "65f0000000000000000000ff").Return(nil, nil)

		_, err := newTestUsecase(repo, publisher).UpdateSchedule(ctx, "65f0000000000000000000ff", &requests.UpdateSchedule{
			Room: strPtr("R-1"),
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestDeleteSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and publishes", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)
		existing := committedSchedule()

		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("DeleteByID", mock.Anything, existing.ID).Return(nil)
		publisher.On("Publish", mock.Anything, constvars.ScheduleEventDeleted, mock.Anything).Return(nil)

		err := newTestUsecase(repo, publisher).DeleteSchedule(ctx, existing.ID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("unknown schedule returns not found", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		repo.On("FindByID", mock.Anything, "65f0000000000000000000ff").Return(nil, nil)

		err := newTestUsecase(repo, publisher).DeleteSchedule(ctx, "65f0000000000000000000ff")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("deleted interval can be reused", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		// After the delete the committed set for the key is empty again.
		repo.On("FindByInstructorAndDay", mock.Anything, "inst-1", constvars.DayMon).Return([]*models.Schedule{}, nil)
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Schedule")).Return("65f00000000000000000000a", nil)
		publisher.On("Publish", mock.Anything, constvars.ScheduleEventCreated, mock.Anything).Return(nil)

		_, err := newTestUsecase(repo, publisher).CreateSchedule(ctx, &requests.CreateSchedule{
			SubjectCode:  "CS101",
			InstructorID: "inst-1",
			Section:      "A",
			Day:          constvars.DayMon,
			StartTime:    "08:00",
			EndTime:      "09:30",
			Room:         "R-204",
		})

		assert.NoError(t, err)
	})
}

func TestListSchedules(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filters through unchanged", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		repo.On("List", mock.Anything, &contracts.ScheduleListFilter{
			InstructorID: "inst-1",
			Day:          constvars.DayMon,
			Skip:         10,
			Limit:        50,
		}).Return([]*models.Schedule{committedSchedule()}, nil)

		result, err := newTestUsecase(repo, publisher).ListSchedules(ctx, &requests.ListSchedules{
			InstructorID: "inst-1",
			Day:          constvars.DayMon,
			Skip:         10,
			Limit:        50,
		})

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown day filter", func(t *testing.T) {
		repo := new(MockScheduleRepository)
		publisher := new(MockEventPublisher)

		_, err := newTestUsecase(repo, publisher).ListSchedules(ctx, &requests.ListSchedules{
			Day:   "Monday",
			Limit: 100,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}
