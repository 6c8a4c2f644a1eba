package exceptions

import (
	"fmt"
	"patient-records-service/internal/pkg/constvars"
)

const (
	CodeValidation          = "validation_failed"
	CodeIdentifierEmpty     = "identifier_empty"
	CodeIdentifierLength    = "identifier_length"
	CodeIdentifierInvalid   = "identifier_invalid"
	CodeIdentifierMonth     = "identifier_birth_month"
	CodeIdentifierDay       = "identifier_birth_day"
	CodeIdentifierFormat    = "identifier_format"
	CodePatientNotFound     = "patient_not_found"
	CodeOTPEmpty            = "otp_empty"
	CodeOTPExpired          = "otp_expired"
	CodeOTPInvalid          = "otp_invalid"
	CodeWrongStep           = "wrong_step"
	CodeNotAuthenticated    = "not_authenticated"
	CodeUploadNoFiles       = "upload_no_files"
	CodeUploadTitleEmpty    = "upload_title_empty"
	CodeUploadMixedSources  = "upload_mixed_sources"
	CodeUploadNothingStored = "upload_nothing_stored"
	CodeAppendFolderItems   = "append_folder_items_failed"
	CodeBlobNotFound        = "blob_not_found"
	CodeRateLimited         = "rate_limited"
	CodeInternal            = "internal_error"
)

var (
	// Request
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, CodeInternal, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
	ErrMissingSessionID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, CodeNotAuthenticated, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingSessionID)
	}
	ErrSessionTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, CodeNotAuthenticated, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionTokenInvalid)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, CodeRateLimited, constvars.ErrClientTooManyRequests, constvars.ErrClientTooManyRequests)
	}

	// Identifier
	ErrIdentifierEmpty = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeIdentifierEmpty, constvars.ErrClientIdentifierEmpty, constvars.ErrClientIdentifierEmpty)
	}
	ErrIdentifierLength = func(err error, scheme string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeIdentifierLength, constvars.ErrClientIdentifierLength, fmt.Sprintf(constvars.ErrDevIdentifierValidation, scheme))
	}
	ErrIdentifierInvalid = func(err error, scheme string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeIdentifierInvalid, constvars.ErrClientIdentifierInvalid, fmt.Sprintf(constvars.ErrDevIdentifierValidation, scheme))
	}
	ErrIdentifierBirthMonth = func(err error, scheme string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeIdentifierMonth, constvars.ErrClientIdentifierBirthMonth, fmt.Sprintf(constvars.ErrDevIdentifierValidation, scheme))
	}
	ErrIdentifierBirthDay = func(err error, scheme string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeIdentifierDay, constvars.ErrClientIdentifierBirthDay, fmt.Sprintf(constvars.ErrDevIdentifierValidation, scheme))
	}
	ErrIdentifierFormat = func(err error, scheme string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeIdentifierFormat, constvars.ErrClientIdentifierFormat, fmt.Sprintf(constvars.ErrDevIdentifierValidation, scheme))
	}

	// Patients
	ErrPatientNotFound = func(err error, patientID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, CodePatientNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevPatientNotFound, patientID))
	}
	ErrPatientStoreFind = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientPatientLookupFailed, fmt.Sprintf(constvars.ErrDevPatientStoreFind, driver))
	}
	ErrAppendFolderItems = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeAppendFolderItems, constvars.ErrClientUploadFailed, fmt.Sprintf(constvars.ErrDevPatientStoreAppend, driver))
	}
	ErrPatientStoreUpsert = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevPatientStoreUpsert, driver))
	}

	// Verification
	ErrWrongStep = func(err error, current, expected string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, CodeWrongStep, constvars.ErrClientWrongStep, fmt.Sprintf(constvars.ErrDevVerificationWrongStep, current, expected))
	}
	ErrOTPEmpty = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeOTPEmpty, constvars.ErrClientOTPEmpty, constvars.ErrClientOTPEmpty)
	}
	ErrOTPExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGone, CodeOTPExpired, constvars.ErrClientOTPExpired, constvars.ErrDevOTPExpired)
	}
	ErrOTPInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeOTPInvalid, constvars.ErrClientOTPInvalid, constvars.ErrDevOTPInvalid)
	}
	ErrOTPGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevOTPGenerate)
	}
	ErrOTPHash = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevOTPHash)
	}
	ErrNotAuthenticated = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, CodeNotAuthenticated, constvars.ErrClientNotLoggedIn, constvars.ErrDevNotAuthenticated)
	}
	ErrSessionLockNotAcquired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionLockNotAcquired)
	}

	// Uploads
	ErrUploadNoFiles = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeUploadNoFiles, constvars.ErrClientNoFilesSelected, constvars.ErrDevUploadNoFiles)
	}
	ErrUploadTitleEmpty = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeUploadTitleEmpty, constvars.ErrClientTitleEmpty, constvars.ErrClientTitleEmpty)
	}
	ErrUploadMixedSources = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeUploadMixedSources, constvars.ErrClientMixedUploadSource, constvars.ErrDevUploadMixedSources)
	}
	ErrUploadNothingStored = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeUploadNothingStored, constvars.ErrClientUploadFailed, constvars.ErrDevUploadNothingStored)
	}

	// Blob storage
	ErrBlobNotFound = func(err error, blobID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, CodeBlobNotFound, constvars.ErrClientBlobNotFound, fmt.Sprintf(constvars.ErrDevBlobNotFound, blobID))
	}
	ErrLocalStorageRead = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevLocalStorageFailedToRead)
	}
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioStatObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToStatObject, bucketName))
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPresignObject, bucketName))
	}
	ErrGCSWriteObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevGCSFailedToWriteObject, bucketName))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevLockNotOwned)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQFailedToPublish, queueName))
	}

	// Rendering
	ErrRenderTemplate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRenderTemplate)
	}
)
