package contracts

import (
	"context"
	"patient-records-service/internal/app/models"
)

type PatientRepository interface {
	// FindByID returns nil, nil when the patient does not exist.
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	AppendFolderItems(ctx context.Context, patientID string, items []models.FolderItem) error
	Upsert(ctx context.Context, patient *models.Patient) error
	Driver() string
}

type PatientUsecase interface {
	Lookup(ctx context.Context, patientID string) (*models.Patient, error)
	AppendItems(ctx context.Context, patientID string, items []models.FolderItem) error
}

type IdentifierValidator interface {
	Validate(raw string) (string, error)
	Scheme() string
}
