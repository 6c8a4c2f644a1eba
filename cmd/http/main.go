package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/delivery/http/controllers"
	"patient-records-service/internal/app/delivery/http/middlewares"
	"patient-records-service/internal/app/delivery/http/routers"
	"patient-records-service/internal/app/drivers/database"
	"patient-records-service/internal/app/drivers/logger"
	"patient-records-service/internal/app/drivers/messaging"
	storageDriver "patient-records-service/internal/app/drivers/storage"
	"patient-records-service/internal/app/services/core/identifiers"
	"patient-records-service/internal/app/services/core/patients"
	"patient-records-service/internal/app/services/core/records"
	"patient-records-service/internal/app/services/core/session"
	"patient-records-service/internal/app/services/core/uploads"
	"patient-records-service/internal/app/services/core/verification"
	"patient-records-service/internal/app/services/shared/locker"
	"patient-records-service/internal/app/services/shared/notifier"
	"patient-records-service/internal/app/services/shared/redis"
	"patient-records-service/internal/app/services/shared/storage"
	"patient-records-service/internal/app/services/shared/sweeper"
	"patient-records-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	openDriverConnections(bootstrap)
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", internalConfig.App.Port),
			zap.String("patient_store", internalConfig.Drivers.PatientStore),
			zap.String("blob_storage", internalConfig.Drivers.BlobStorage),
			zap.String("session_store", internalConfig.Drivers.SessionStore),
			zap.String("otp_notifier", internalConfig.Drivers.OTPNotifier),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to close driver connections: %v", err)
	}

	log.Println("Server exiting")
}

// openDriverConnections connects only the backends the selected drivers need.
func openDriverConnections(bootstrap *config.Bootstrap) {
	drivers := bootstrap.InternalConfig.Drivers

	switch drivers.PatientStore {
	case constvars.PatientStoreDriverMongo:
		bootstrap.MongoDB = database.NewMongoDB(bootstrap.DriverConfig)
	case constvars.PatientStoreDriverFirestore:
		bootstrap.Firestore = database.NewFirestore(bootstrap.DriverConfig)
	}

	if drivers.SessionStore == constvars.SessionStoreDriverRedis {
		bootstrap.Redis = database.NewRedisClient(bootstrap.DriverConfig)
	}

	if drivers.OTPNotifier == constvars.OTPNotifierDriverRabbitMQ {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(bootstrap.DriverConfig)
	}

	switch drivers.BlobStorage {
	case constvars.BlobStorageDriverMinio:
		bootstrap.Minio = storageDriver.NewMinio(bootstrap.DriverConfig)
		storageDriver.EnsureMinioBucket(context.Background(), bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName)
	case constvars.BlobStorageDriverGCS:
		bootstrap.GCS = storageDriver.NewGCS(bootstrap.DriverConfig)
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Patients: the built-in table always backs lookups as the fallback store
	sampleRepository := patients.NewPatientMemoryRepository(patients.SamplePatients(internalConfig.App.IdentifierScheme))
	var patientRepository contracts.PatientRepository = sampleRepository
	switch {
	case bootstrap.MongoDB != nil:
		patientRepository = patients.NewPatientMongoRepository(bootstrap.MongoDB)
	case bootstrap.Firestore != nil:
		patientRepository = patients.NewPatientFirestoreRepository(bootstrap.Firestore)
	}
	patientUsecase := patients.NewPatientUsecase(patientRepository, sampleRepository, log)

	// Sessions
	var sessionRepository contracts.SessionRepository
	var lockerService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		sessionRepository = session.NewSessionRedisRepository(redisRepository, internalConfig.App.SessionTTL())
		lockerService = locker.NewLockService(redisRepository, log)
	} else {
		sessionRepository = session.NewSessionMemoryRepository(internalConfig.App.SessionTTL())
		lockerService = locker.NewMemoryLocker()
	}

	// OTP delivery
	var otpNotifier contracts.OTPNotifier
	if bootstrap.RabbitMQ != nil {
		channel := messaging.NewRabbitMQChannel(bootstrap.RabbitMQ, internalConfig.App.RabbitMQOTPQueue)
		otpNotifier = notifier.NewRabbitMQNotifier(channel, internalConfig.App.RabbitMQOTPQueue, log)
	} else {
		otpNotifier = notifier.NewDemoNotifier(log)
	}

	// Blob storage
	var blobStorage contracts.BlobStorage
	switch {
	case bootstrap.Minio != nil:
		blobStorage = storage.NewMinioStorage(
			bootstrap.Minio,
			internalConfig.Minio.BucketName,
			time.Duration(internalConfig.Minio.PresignedURLExpiryTimeInMinutes)*time.Minute,
			log,
		)
	case bootstrap.GCS != nil:
		blobStorage = storage.NewGCSStorage(bootstrap.GCS, internalConfig.GCS.BucketName, log)
	default:
		blobStorage = storage.NewLocalStorage(log)
	}

	verificationUsecase := verification.NewVerificationUsecase(
		sessionRepository,
		lockerService,
		patientUsecase,
		identifiers.New(internalConfig.App.IdentifierScheme),
		otpNotifier,
		internalConfig,
		log,
	)
	recordUsecase := records.NewRecordUsecase(verificationUsecase, patientUsecase, log)
	uploadUsecase := uploads.NewUploadUsecase(verificationUsecase, patientUsecase, blobStorage, log)

	// gcs references are public URLs and need no download route
	var blobController *controllers.BlobController
	if blobReader, ok := blobStorage.(contracts.BlobReader); ok {
		blobController = controllers.NewBlobController(log, verificationUsecase, blobReader)
	}

	middlewareInstance := middlewares.NewMiddlewares(log, internalConfig)

	// Sweeper for the in-process stores; redis expires its own keys
	sweeperWorker := sweeper.NewWorker(log, internalConfig.App.SweeperCronSpec)
	sweeperWorker.Register("code_rate_limiter", middlewareInstance.CodeLimiter)
	if s, ok := sessionRepository.(contracts.Sweeper); ok {
		sweeperWorker.Register("sessions", s)
	}
	if s, ok := lockerService.(contracts.Sweeper); ok {
		sweeperWorker.Register("session_locks", s)
	}
	sweeperWorker.Start()
	bootstrap.WorkerStop = sweeperWorker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		controllers.NewVerificationController(log, verificationUsecase, internalConfig),
		controllers.NewRecordController(log, recordUsecase, internalConfig),
		controllers.NewUploadController(log, uploadUsecase, internalConfig),
		blobController,
		controllers.NewHealthController(internalConfig),
	)
}
