package main

import (
	"context"
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/drivers/database"
	"patient-records-service/internal/app/drivers/logger"
	"patient-records-service/internal/app/services/core/patients"
	"patient-records-service/internal/pkg/constvars"
	"time"

	"github.com/sirupsen/logrus"
)

// seed loads the built-in sample patients into the configured remote store.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	var repository contracts.PatientRepository
	switch internalConfig.Drivers.PatientStore {
	case constvars.PatientStoreDriverMongo:
		mongoDB := database.NewMongoDB(driverConfig)
		defer mongoDB.Client().Disconnect(context.Background())
		repository = patients.NewPatientMongoRepository(mongoDB)
	case constvars.PatientStoreDriverFirestore:
		client := database.NewFirestore(driverConfig)
		defer client.Close()
		repository = patients.NewPatientFirestoreRepository(client)
	default:
		log.WithField("driver", internalConfig.Drivers.PatientStore).Warn("Patient store driver has no remote store to seed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	samples := patients.SamplePatients(internalConfig.App.IdentifierScheme)
	for i := range samples {
		patient := &samples[i]
		if err := repository.Upsert(ctx, patient); err != nil {
			log.WithFields(logrus.Fields{
				"driver":     repository.Driver(),
				"patient_id": patient.IDNumber,
			}).WithError(err).Fatal("Failed to seed patient")
		}
		log.WithFields(logrus.Fields{
			"driver":       repository.Driver(),
			"patient_id":   patient.IDNumber,
			"folder_items": len(patient.Folder),
		}).Info("Seeded patient")
	}

	log.WithField("count", len(samples)).Info("Seeding finished")
}
