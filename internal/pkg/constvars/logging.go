package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingVerificationStep  = "verification_step"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingQueueNameKey      = "queue_name"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectKey         = "object_key"
	LoggingFileNameKey       = "file_name"
	LoggingFileSizeKey       = "file_size"
	LoggingItemsCountKey     = "items_count"
	LoggingStoreDriverKey    = "store_driver"
	LoggingExpiresAtKey      = "expires_at"
	LoggingSourceKey         = "source"
	LoggingLockExpirationKey = "lock_expiration"
)
