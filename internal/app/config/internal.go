package config

import "time"

type InternalConfig struct {
	App     App
	Drivers AppDrivers
	JWT     AppJWT
	Minio   AppMinio
	GCS     AppGCS
}

type App struct {
	Env                              string
	Port                             string
	Version                          string
	Timezone                         string
	EndpointPrefix                   string
	AllowedOrigins                   string
	MaxRequests                      int
	ShutdownTimeoutInSeconds         int
	RequestTimeoutInSeconds          int
	RequestBodyLimitInMegabyte       int
	IdentifierScheme                 string
	SessionExpiredTimeInMinutes      int
	SessionLockExpiredTimeInSeconds  int
	OTPExpiredTimeInMinutes          int
	OTPHashCost                      int
	OTPDemoEcho                      bool
	OTPVerifyMaxAttemptsPerMinute    int
	OTPVerifyBlockTimeInSeconds      int
	RecordsRevealDelayInMilliseconds int
	RabbitMQOTPQueue                 string
	MaxUploadSizeInMB                int64
	SweeperCronSpec                  string
}

// AppDrivers selects the backend of every swappable component once at startup.
type AppDrivers struct {
	PatientStore string
	BlobStorage  string
	SessionStore string
	OTPNotifier  string
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                      string
	PresignedURLExpiryTimeInMinutes int
}

type AppGCS struct {
	BucketName string
}

func (a App) OTPTTL() time.Duration {
	return time.Duration(a.OTPExpiredTimeInMinutes) * time.Minute
}

func (a App) SessionTTL() time.Duration {
	return time.Duration(a.SessionExpiredTimeInMinutes) * time.Minute
}

func (a App) SessionLockTTL() time.Duration {
	return time.Duration(a.SessionLockExpiredTimeInSeconds) * time.Second
}

func (a App) RecordsRevealDelay() time.Duration {
	return time.Duration(a.RecordsRevealDelayInMilliseconds) * time.Millisecond
}

func (a App) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutInSeconds) * time.Second
}
