package exceptions

import (
	"fmt"
	"registrar-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Time-interval model
	ErrInvalidClockTime = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidTimeFormat, constvars.ErrDevInvalidClockTime)
	}
	ErrEndTimeNotAfterStartTime = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, constvars.ErrClientEndTimeNotAfterStartTime, constvars.ErrDevEndTimeBeforeStartTime)
	}

	// Schedules
	ErrScheduleConflict = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, constvars.ErrClientScheduleConflict, constvars.ErrDevScheduleOverlap)
	}
	ErrScheduleNotExist = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusNotFound, constvars.ErrClientScheduleNotFound, constvars.ErrDevScheduleNotExists)
	}

	// Subjects
	ErrSubjectNotExist = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusNotFound, constvars.ErrClientSubjectNotFound, constvars.ErrDevSubjectNotExists)
	}
	ErrSubjectCodeAlreadyExist = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, constvars.ErrClientSubjectCodeAlreadyExists, constvars.ErrDevSubjectCodeExists)
	}

	// Users
	ErrUserNotExist = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevUserNotExists)
	}
	ErrUserIDAlreadyExist = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUserIDAlreadyExists, constvars.ErrDevUserIDExists)
	}
	ErrHashPassword = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}

	// Auth
	ErrInvalidUserIDOrPassword = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidUserIDOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrUserInactive = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUserInactive, constvars.ErrDevUserInactive)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenExpired)
	}
	ErrRoleNotAllowed = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotAllowed)
	}
	ErrSessionNotFound = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionNotFound)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusNotFound, constvars.ErrClientScheduleNotFound, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}
	ErrRabbitMQOpenChannel = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQOpenChannel)
	}
)
