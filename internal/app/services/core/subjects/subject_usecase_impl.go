package subjects

import (
	"context"
	"registrar-service/internal/app/contracts"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"
	"registrar-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type subjectUsecase struct {
	SubjectRepository contracts.SubjectRepository
	Log               *zap.Logger
}

func NewSubjectUsecase(subjectRepository contracts.SubjectRepository, logger *zap.Logger) contracts.SubjectUsecase {
	return &subjectUsecase{
		SubjectRepository: subjectRepository,
		Log:               logger,
	}
}

func (uc *subjectUsecase) CreateSubject(ctx context.Context, request *requests.CreateSubject) (*responses.Subject, error) {
	existing, err := uc.SubjectRepository.FindByCode(ctx, request.SubjectCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrSubjectCodeAlreadyExist(nil)
	}

	subject := &models.Subject{
		SubjectCode:        request.SubjectCode,
		SubjectDescription: request.SubjectDescription,
		Units:              request.Units,
		Department:         request.Department,
	}

	subjectID, err := uc.SubjectRepository.Insert(ctx, subject)
	if err != nil {
		uc.Log.Error("subjectUsecase.CreateSubject error inserting subject",
			zap.String(constvars.LoggingSubjectCodeKey, request.SubjectCode),
			zap.Error(err),
		)
		return nil, err
	}
	subject.ID = subjectID

	return subject.ConvertToResponse(), nil
}

func (uc *subjectUsecase) GetSubjectByCode(ctx context.Context, subjectCode string) (*responses.Subject, error) {
	subject, err := uc.SubjectRepository.FindByCode(ctx, subjectCode)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, exceptions.ErrSubjectNotExist(nil)
	}
	return subject.ConvertToResponse(), nil
}

func (uc *subjectUsecase) ListSubjects(ctx context.Context, skip, limit int) ([]*responses.Subject, error) {
	subjects, err := uc.SubjectRepository.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*responses.Subject, 0, len(subjects))
	for _, subject := range subjects {
		result = append(result, subject.ConvertToResponse())
	}
	return result, nil
}

func (uc *subjectUsecase) UpdateSubject(ctx context.Context, subjectCode string, request *requests.UpdateSubject) (*responses.Subject, error) {
	subject, err := uc.SubjectRepository.FindByCode(ctx, subjectCode)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, exceptions.ErrSubjectNotExist(nil)
	}

	// Renaming a subject must not collide with another existing code.
	if request.SubjectCode != nil && *request.SubjectCode != subject.SubjectCode {
		duplicate, err := uc.SubjectRepository.FindByCode(ctx, *request.SubjectCode)
		if err != nil {
			return nil, err
		}
		if duplicate != nil {
			return nil, exceptions.ErrSubjectCodeAlreadyExist(nil)
		}
	}

	subject.ApplyPartialUpdate(request)
	err = uc.SubjectRepository.Update(ctx, subject)
	if err != nil {
		uc.Log.Error("subjectUsecase.UpdateSubject error updating subject",
			zap.String(constvars.LoggingSubjectCodeKey, subjectCode),
			zap.Error(err),
		)
		return nil, err
	}
	return subject.ConvertToResponse(), nil
}

func (uc *subjectUsecase) DeleteSubject(ctx context.Context, subjectCode string) error {
	subject, err := uc.SubjectRepository.FindByCode(ctx, subjectCode)
	if err != nil {
		return err
	}
	if subject == nil {
		return exceptions.ErrSubjectNotExist(nil)
	}
	return uc.SubjectRepository.DeleteByID(ctx, subject.ID)
}
