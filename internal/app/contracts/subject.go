package contracts

import (
	"context"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/dto/responses"
)

type SubjectUsecase interface {
	CreateSubject(ctx context.Context, request *requests.CreateSubject) (*responses.Subject, error)
	GetSubjectByCode(ctx context.Context, subjectCode string) (*responses.Subject, error)
	ListSubjects(ctx context.Context, skip, limit int) ([]*responses.Subject, error)
	UpdateSubject(ctx context.Context, subjectCode string, request *requests.UpdateSubject) (*responses.Subject, error)
	DeleteSubject(ctx context.Context, subjectCode string) error
}

type SubjectRepository interface {
	Insert(ctx context.Context, subject *models.Subject) (subjectID string, err error)
	FindByCode(ctx context.Context, subjectCode string) (*models.Subject, error)
	List(ctx context.Context, skip, limit int) ([]*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) error
	DeleteByID(ctx context.Context, subjectID string) error
}
