package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"folder_type": "must be one of [document, image, prescription, lab-result, x-ray, other]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong, please try again."
	ErrClientServerLongRespond             = "the server took too long to respond"
	ErrClientTooManyRequests               = "Too many requests, you are blocked temporarily."

	ErrClientIdentifierEmpty      = "Please enter your ID number."
	ErrClientIdentifierLength     = "ID number must be exactly 13 digits"
	ErrClientIdentifierInvalid    = "Invalid ID number"
	ErrClientIdentifierBirthMonth = "Invalid birth month in ID number"
	ErrClientIdentifierBirthDay   = "Invalid birth day in ID number"
	ErrClientIdentifierFormat     = "Patient ID must be 2 to 32 letters, digits or dashes"
	ErrClientPatientNotFound      = "ID number not found in our records. Please contact your healthcare provider."
	ErrClientPatientLookupFailed  = "Error verifying ID number. Please try again."

	ErrClientOTPEmpty    = "Please enter the OTP."
	ErrClientOTPExpired  = "OTP has expired. Please request a new one."
	ErrClientOTPInvalid  = "Invalid OTP. Please try again."
	ErrClientWrongStep   = "This action is not available at the current verification step."
	ErrClientNotLoggedIn = "Please authenticate first."

	ErrClientNoFilesSelected   = "Please select at least one file to upload."
	ErrClientTitleEmpty        = "Please enter a document title."
	ErrClientMixedUploadSource = "Files from the file picker and the camera cannot be uploaded in one batch."
	ErrClientUploadFailed      = "Error uploading documents. Please try again."
	ErrClientBlobNotFound      = "document not found"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "failed to parse JSON body"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevCannotParseMultipartForm   = "failed to parse multipart form"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevMissingSessionID           = "session id missing from request context"
	ErrDevSessionTokenInvalid        = "session token is invalid or expired"
	ErrDevIdentifierValidation       = "identifier rejected by %s validator"
	ErrDevPatientNotFound            = "patient %s not found in primary or fallback store"
	ErrDevPatientStoreFind           = "failed to find patient in %s store"
	ErrDevPatientStoreAppend         = "failed to append folder items in %s store"
	ErrDevPatientStoreUpsert         = "failed to upsert patient in %s store"
	ErrDevVerificationWrongStep      = "verification step is %s, expected %s"
	ErrDevOTPExpired                 = "one-time code expired"
	ErrDevOTPInvalid                 = "one-time code does not match"
	ErrDevOTPGenerate                = "failed to generate one-time code"
	ErrDevOTPHash                    = "failed to hash one-time code"
	ErrDevOTPDelivery                = "failed to deliver one-time code"
	ErrDevNotAuthenticated           = "verification session is not authenticated"
	ErrDevUploadNoFiles              = "upload has no files"
	ErrDevUploadMixedSources         = "upload mixes file-picker and camera sources"
	ErrDevUploadNothingStored        = "no file of the batch could be stored"
	ErrDevSessionLockNotAcquired     = "could not acquire verification session lock"
	ErrDevLockNotOwned               = "lock not owned by this client"
	ErrDevBlobNotFound               = "blob %s not found"
	ErrDevBlobReferenceMalformed     = "blob reference is not a stored object key"
	ErrDevMinioFailedToStatObject    = "failed to stat object in minio storage with bucket name '%s'"
	ErrDevMinioFailedToCreateObject  = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToPresignObject = "failed to get presigned object URL from minio storage with bucket name '%s'"
	ErrDevGCSFailedToWriteObject     = "failed to write object into gcs bucket '%s'"
	ErrDevLocalStorageFailedToRead   = "failed to read blob content for local storage"
	ErrDevRedisSetData               = "failed to SET data into redis"
	ErrDevRedisGetData               = "failed to GET data from redis"
	ErrDevRedisDeleteData            = "failed to DELETE data from redis"
	ErrDevRabbitMQFailedToPublish    = "failed to publish message into rabbitmq queue '%s'"
	ErrDevRenderTemplate             = "failed to render records template"
)
