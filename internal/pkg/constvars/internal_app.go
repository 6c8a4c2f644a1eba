package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "PRS_SVC_"
)

const (
	SessionCookieName = "patient_session"
	SessionIDClaimKey = "session_id"
)

const (
	OTPLength   = 6
	OTPMinValue = 100000
	OTPMaxValue = 999999
)

const (
	IdentifierSchemeNationalID = "national-id"
	IdentifierSchemeFreeForm   = "free-form"
)

const (
	PatientStoreDriverMemory    = "memory"
	PatientStoreDriverMongo     = "mongo"
	PatientStoreDriverFirestore = "firestore"

	BlobStorageDriverLocal = "local"
	BlobStorageDriverMinio = "minio"
	BlobStorageDriverGCS   = "gcs"

	SessionStoreDriverMemory = "memory"
	SessionStoreDriverRedis  = "redis"

	OTPNotifierDriverDemo     = "demo"
	OTPNotifierDriverRabbitMQ = "rabbitmq"
)

const (
	PatientCollection      = "patients"
	PatientFolderField     = "folder"
	PatientIDNumberField   = "idNumber"
	BlobObjectPrefix       = "patient-documents"
	BlobReferenceHead      = "blob:"
	RedisSessionKeyPrefix  = "verification_session:"
	RedisLockKeyPrefix     = "verification_lock:"
)

const (
	UploadSourceFilePicker = "file-picker"
	UploadSourceCamera     = "camera"
)

const (
	URLParamBlobID = "blobID"
)
