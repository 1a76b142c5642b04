package subjects

import (
	"context"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/dto/requests"
	"registrar-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) Insert(ctx context.Context, subject *models.Subject) (string, error) {
	args := m.Called(ctx, subject)
	return args.String(0), args.Error(1)
}

func (m *MockSubjectRepository) FindByCode(ctx context.Context, subjectCode string) (*models.Subject, error) {
	args := m.Called(ctx, subjectCode)
	if subject, ok := args.Get(0).(*models.Subject); ok {
		return subject, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubjectRepository) List(ctx context.Context, skip, limit int) ([]*models.Subject, error) {
	args := m.Called(ctx, skip, limit)
	if subjects, ok := args.Get(0).([]*models.Subject); ok {
		return subjects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) DeleteByID(ctx context.Context, subjectID string) error {
	args := m.Called(ctx, subjectID)
	return args.Error(0)
}

func storedSubject() *models.Subject {
	return &models.Subject{
		ID:                 "65f000000000000000000020",
		SubjectCode:        "CS101",
		SubjectDescription: "Introduction to Computing",
		Units:              3,
		Department:         constvars.DepartmentBSCS,
	}
}

func TestCreateSubject(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when the code is free", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		repo.On("FindByCode", mock.Anything, "CS101").Return(nil, nil)
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Subject")).Return("65f000000000000000000020", nil)

		response, err := NewSubjectUsecase(repo, zap.NewNop()).CreateSubject(ctx, &requests.CreateSubject{
			SubjectCode:        "CS101",
			SubjectDescription: "Introduction to Computing",
			Units:              3,
			Department:         constvars.DepartmentBSCS,
		})

		assert.NoError(t, err)
		assert.Equal(t, "65f000000000000000000020", response.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate code", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		repo.On("FindByCode", mock.Anything, "CS101").Return(storedSubject(), nil)

		_, err := NewSubjectUsecase(repo, zap.NewNop()).CreateSubject(ctx, &requests.CreateSubject{
			SubjectCode:        "CS101",
			SubjectDescription: "Duplicate",
			Units:              3,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestUpdateSubject(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	t.Run("renaming to a taken code is rejected", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		repo.On("FindByCode", mock.Anything, "CS101").Return(storedSubject(), nil)
		repo.On("FindByCode", mock.Anything, "CS102").Return(&models.Subject{
			ID:          "65f000000000000000000021",
			SubjectCode: "CS102",
		}, nil)

		_, err := NewSubjectUsecase(repo, zap.NewNop()).UpdateSubject(ctx, "CS101", &requests.UpdateSubject{
			SubjectCode: strPtr("CS102"),
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientSubjectCodeAlreadyExists, customErr.ClientMessage)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("keeping the same code does not trip the duplicate check", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		repo.On("FindByCode", mock.Anything, "CS101").Return(storedSubject(), nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Subject")).Return(nil)

		response, err := NewSubjectUsecase(repo, zap.NewNop()).UpdateSubject(ctx, "CS101", &requests.UpdateSubject{
			SubjectCode:        strPtr("CS101"),
			SubjectDescription: strPtr("Intro to Computing, revised"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Intro to Computing, revised", response.SubjectDescription)
		repo.AssertExpectations(t)
	})

	t.Run("unknown subject returns not found", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		repo.On("FindByCode", mock.Anything, "NOPE").Return(nil, nil)

		_, err := NewSubjectUsecase(repo, zap.NewNop()).UpdateSubject(ctx, "NOPE", &requests.UpdateSubject{
			Units: nil,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestDeleteSubject(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes by resolved document ID", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		existing := storedSubject()
		repo.On("FindByCode", mock.Anything, "CS101").Return(existing, nil)
		repo.On("DeleteByID", mock.Anything, existing.ID).Return(nil)

		err := NewSubjectUsecase(repo, zap.NewNop()).DeleteSubject(ctx, "CS101")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
