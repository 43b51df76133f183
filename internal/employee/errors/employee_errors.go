package employeeerrors

import (
	"net/http"

	"go-staffhub/internal/shared/apperror"
)

var (
	ErrAllFieldsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"All fields are required",
		http.StatusBadRequest,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Password must be at least 6 characters long",
		http.StatusBadRequest,
	)
	ErrProfilePicRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Profile picture is required",
		http.StatusBadRequest,
	)
	ErrProfilePicUploadFailed = apperror.New(
		apperror.CodeInvalidInput,
		"Failed to upload profile picture",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeInvalidInput,
		"Employee with this email already exists",
		http.StatusBadRequest,
	)
	ErrInvalidStateName = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid state name",
		http.StatusBadRequest,
	)
	ErrInvalidCityName = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid city name for the specified state",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentName = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department name",
		http.StatusBadRequest,
	)
	ErrInvalidDesignationName = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid designation name",
		http.StatusBadRequest,
	)
	ErrInvalidBankCode = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid bank code",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary amount",
		http.StatusBadRequest,
	)
	ErrInvalidDOB = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid dob format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDuplicateEntry = apperror.New(
		apperror.CodeInvalidInput,
		"Duplicate entry found",
		http.StatusBadRequest,
	)
	ErrInvalidReferenceData = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid reference data",
		http.StatusBadRequest,
	)
	ErrRelatedRecordNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Required record not found",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrCreateFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to add employee",
		http.StatusInternalServerError,
	)
)
