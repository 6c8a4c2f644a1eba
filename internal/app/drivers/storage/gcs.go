package storage

import (
	"context"
	"log"
	"patient-records-service/internal/app/config"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

func NewGCS(driverConfig *config.DriverConfig) *storage.Client {
	var opts []option.ClientOption
	if driverConfig.GCS.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(driverConfig.GCS.CredentialsFile))
	}

	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		log.Fatalf("Failed to initialize GCS client: %s", err.Error())
	}
	log.Println("Successfully connected to google cloud storage")
	return client
}
