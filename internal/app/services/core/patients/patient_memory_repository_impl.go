package patients

import (
	"context"
	"fmt"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"sync"
)

// PatientMemoryRepository is the in-process patient table. It serves as the
// primary store when no database is configured and as the lookup fallback otherwise.
type PatientMemoryRepository struct {
	mu       sync.RWMutex
	patients map[string]*models.Patient
}

func NewPatientMemoryRepository(seed []models.Patient) *PatientMemoryRepository {
	repo := &PatientMemoryRepository{
		patients: make(map[string]*models.Patient, len(seed)),
	}
	for i := range seed {
		repo.patients[seed[i].IDNumber] = seed[i].Clone()
	}
	return repo
}

var _ contracts.PatientRepository = (*PatientMemoryRepository)(nil)

func (repo *PatientMemoryRepository) Driver() string {
	return constvars.PatientStoreDriverMemory
}

func (repo *PatientMemoryRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	patient, ok := repo.patients[patientID]
	if !ok {
		return nil, nil
	}
	return patient.Clone(), nil
}

func (repo *PatientMemoryRepository) AppendFolderItems(ctx context.Context, patientID string, items []models.FolderItem) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	patient, ok := repo.patients[patientID]
	if !ok {
		return fmt.Errorf("patient %s does not exist", patientID)
	}
	patient.Folder = append(patient.Folder, items...)
	return nil
}

func (repo *PatientMemoryRepository) Upsert(ctx context.Context, patient *models.Patient) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.patients[patient.IDNumber] = patient.Clone()
	return nil
}
