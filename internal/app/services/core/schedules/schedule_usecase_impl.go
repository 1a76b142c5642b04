package schedules

import (
	"context"
	"fmt"
	"registrar-service/internal/app/contracts"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"
	"registrar-service/internal/pkg/exceptions"
	"registrar-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	LockerService      contracts.LockerService
	EventPublisher     contracts.EventPublisher
	Log                *zap.Logger
}

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleRepository: scheduleRepository,
		LockerService:      lockerService,
		EventPublisher:     eventPublisher,
		Log:                logger,
	}
}

func (uc *scheduleUsecase) CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error) {
	startMinute, endMinute, err := parseInterval(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}

	// The key lock is held across check and insert so no concurrent writer
	// for the same instructor/day can slip past the conflict check.
	lockKey := scheduleLockKey(request.InstructorID, request.Day)
	uc.LockerService.Lock(lockKey)
	defer uc.LockerService.Unlock(lockKey)

	err = uc.checkConflict(ctx, request.InstructorID, request.Day, startMinute, endMinute, "")
	if err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		SubjectCode:  request.SubjectCode,
		InstructorID: request.InstructorID,
		Section:      request.Section,
		Day:          request.Day,
		StartTime:    utils.FormatClockTime(startMinute),
		EndTime:      utils.FormatClockTime(endMinute),
		Room:         request.Room,
	}

	scheduleID, err := uc.ScheduleRepository.Insert(ctx, schedule)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateSchedule error inserting schedule",
			zap.String(constvars.LoggingInstructorIDKey, request.InstructorID),
			zap.Error(err),
		)
		return nil, err
	}
	schedule.ID = scheduleID

	uc.publishEvent(ctx, constvars.ScheduleEventCreated, schedule)
	return schedule.ConvertToResponse(), nil
}

func (uc *scheduleUsecase) GetScheduleByID(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotExist(nil)
	}
	return schedule.ConvertToResponse(), nil
}

func (uc *scheduleUsecase) UpdateSchedule(ctx context.Context, scheduleID string, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotExist(nil)
	}

	// Effective values: the state the record would hold after the update.
	effectiveInstructor := schedule.InstructorID
	if request.InstructorID != nil {
		effectiveInstructor = *request.InstructorID
	}
	effectiveDay := schedule.Day
	if request.Day != nil {
		effectiveDay = *request.Day
	}
	effectiveStart := schedule.StartTime
	if request.StartTime != nil {
		effectiveStart = *request.StartTime
	}
	effectiveEnd := schedule.EndTime
	if request.EndTime != nil {
		effectiveEnd = *request.EndTime
	}

	if !request.TouchesConflictScope() {
		// Pure room/section/subjectCode edits never re-check conflicts.
		schedule.ApplyPartialUpdate(request)
		err = uc.ScheduleRepository.Update(ctx, schedule)
		if err != nil {
			return nil, err
		}
		uc.publishEvent(ctx, constvars.ScheduleEventUpdated, schedule)
		return schedule.ConvertToResponse(), nil
	}

	startMinute, endMinute, err := parseInterval(effectiveStart, effectiveEnd)
	if err != nil {
		return nil, err
	}

	lockKey := scheduleLockKey(effectiveInstructor, effectiveDay)
	uc.LockerService.Lock(lockKey)
	defer uc.LockerService.Unlock(lockKey)

	// The record being updated must not conflict with itself.
	err = uc.checkConflict(ctx, effectiveInstructor, effectiveDay, startMinute, endMinute, schedule.ID)
	if err != nil {
		return nil, err
	}

	schedule.ApplyPartialUpdate(request)
	schedule.StartTime = utils.FormatClockTime(startMinute)
	schedule.EndTime = utils.FormatClockTime(endMinute)

	err = uc.ScheduleRepository.Update(ctx, schedule)
	if err != nil {
		uc.Log.Error("scheduleUsecase.UpdateSchedule error updating schedule",
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, constvars.ScheduleEventUpdated, schedule)
	return schedule.ConvertToResponse(), nil
}

func (uc *scheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID string) error {
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return err
	}
	if schedule == nil {
		return exceptions.ErrScheduleNotExist(nil)
	}

	err = uc.ScheduleRepository.DeleteByID(ctx, scheduleID)
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, constvars.ScheduleEventDeleted, schedule)
	return nil
}

func (uc *scheduleUsecase) ListSchedules(ctx context.Context, request *requests.ListSchedules) ([]*responses.Schedule, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	schedules, err := uc.ScheduleRepository.List(ctx, &contracts.ScheduleListFilter{
		InstructorID: request.InstructorID,
		Room:         request.Room,
		Day:          request.Day,
		Skip:         request.Skip,
		Limit:        request.Limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]*responses.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		result = append(result, schedule.ConvertToResponse())
	}
	return result, nil
}

// checkConflict decides whether the candidate interval may be committed for
// the given instructor and day. For updates, excludeID removes the record
// being edited from the committed set before the overlap test. Comparison
// happens on minute-of-day values; the stored strings are only parsed.
func (uc *scheduleUsecase) checkConflict(ctx context.Context, instructorID, day string, startMinute, endMinute int, excludeID string) error {
	committed, err := uc.ScheduleRepository.FindByInstructorAndDay(ctx, instructorID, day)
	if err != nil {
		return err
	}

	for _, existing := range committed {
		if excludeID != "" && existing.ID == excludeID {
			continue
		}

		existingStart, err := utils.ParseClockTime(existing.StartTime)
		if err != nil {
			return exceptions.ErrInvalidClockTime(err)
		}
		existingEnd, err := utils.ParseClockTime(existing.EndTime)
		if err != nil {
			return exceptions.ErrInvalidClockTime(err)
		}

		if utils.ClockRangesOverlap(startMinute, endMinute, existingStart, existingEnd) {
			return exceptions.ErrScheduleConflict(nil)
		}
	}
	return nil
}

// parseInterval validates both endpoints and the strict start < end ordering.
func parseInterval(startTime, endTime string) (startMinute, endMinute int, err error) {
	startMinute, err = utils.ParseClockTime(startTime)
	if err != nil {
		return 0, 0, exceptions.ErrInvalidClockTime(err)
	}
	endMinute, err = utils.ParseClockTime(endTime)
	if err != nil {
		return 0, 0, exceptions.ErrInvalidClockTime(err)
	}
	if endMinute <= startMinute {
		return 0, 0, exceptions.ErrEndTimeNotAfterStartTime(nil)
	}
	return startMinute, endMinute, nil
}

func scheduleLockKey(instructorID, day string) string {
	return fmt.Sprintf(constvars.ScheduleLockKeyFormat, instructorID, day)
}

func (uc *scheduleUsecase) publishEvent(ctx context.Context, action string, schedule *models.Schedule) {
	if uc.EventPublisher == nil {
		return
	}
	err := uc.EventPublisher.Publish(ctx, action, schedule.ConvertToResponse())
	if err != nil {
		// Event delivery is best-effort; the write already committed.
		uc.Log.Warn("scheduleUsecase.publishEvent failed to publish schedule event",
			zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
