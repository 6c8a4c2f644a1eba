package config

import (
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "patient_records"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Firestore: Firestore{
			ProjectID:       utils.GetEnvString("FIRESTORE_PROJECT_ID", ""),
			CredentialsFile: utils.GetEnvString("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		GCS: GCS{
			CredentialsFile: utils.GetEnvString("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                              utils.GetEnvString("APP_ENV", "development"),
			Port:                             utils.GetEnvString("APP_PORT", ":8080"),
			Version:                          utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                         utils.GetEnvString("APP_TIMEZONE", "Africa/Johannesburg"),
			EndpointPrefix:                   utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:                   utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                      utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:          utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			RequestBodyLimitInMegabyte:       utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 32),
			IdentifierScheme:                 utils.GetEnvString("APP_IDENTIFIER_SCHEME", constvars.IdentifierSchemeNationalID),
			SessionExpiredTimeInMinutes:      utils.GetEnvInt("APP_SESSION_EXPIRED_TIME_IN_MINUTES", 60),
			SessionLockExpiredTimeInSeconds:  utils.GetEnvInt("APP_SESSION_LOCK_EXPIRED_TIME_IN_SECONDS", 30),
			OTPExpiredTimeInMinutes:          utils.GetEnvInt("APP_OTP_EXPIRED_TIME_IN_MINUTES", 5),
			OTPHashCost:                      utils.GetEnvInt("APP_OTP_HASH_COST", 10),
			OTPDemoEcho:                      utils.GetEnvBool("APP_OTP_DEMO_ECHO", true),
			OTPVerifyMaxAttemptsPerMinute:    utils.GetEnvInt("APP_OTP_VERIFY_MAX_ATTEMPTS_PER_MINUTE", 10),
			OTPVerifyBlockTimeInSeconds:      utils.GetEnvInt("APP_OTP_VERIFY_BLOCK_TIME_IN_SECONDS", 60),
			RecordsRevealDelayInMilliseconds: utils.GetEnvInt("APP_RECORDS_REVEAL_DELAY_IN_MILLISECONDS", 1000),
			RabbitMQOTPQueue:                 utils.GetEnvString("APP_RABBITMQ_OTP_QUEUE", "patient_otp"),
			MaxUploadSizeInMB:                utils.GetEnvInt64("APP_MAX_UPLOAD_SIZE_IN_MB", 25),
			SweeperCronSpec:                  utils.GetEnvString("APP_SWEEPER_CRON_SPEC", "@every 1m"),
		},
		Drivers: AppDrivers{
			PatientStore: utils.GetEnvString("PATIENT_STORE_DRIVER", constvars.PatientStoreDriverMemory),
			BlobStorage:  utils.GetEnvString("BLOB_STORAGE_DRIVER", constvars.BlobStorageDriverLocal),
			SessionStore: utils.GetEnvString("SESSION_STORE_DRIVER", constvars.SessionStoreDriverMemory),
			OTPNotifier:  utils.GetEnvString("OTP_NOTIFIER_DRIVER", constvars.OTPNotifierDriverDemo),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "change-me"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "patient-documents"),
			PresignedURLExpiryTimeInMinutes: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_TIME_IN_MINUTES", 15),
		},
		GCS: AppGCS{
			BucketName: utils.GetEnvString("GCS_BUCKET_NAME", "patient-documents"),
		},
	}
}
