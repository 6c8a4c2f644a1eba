package patients

import (
	"context"
	"fmt"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PatientFirestoreRepository keeps one document per patient in the
// "patients" collection, keyed by the identifier.
type PatientFirestoreRepository struct {
	Client *firestore.Client
}

func NewPatientFirestoreRepository(client *firestore.Client) contracts.PatientRepository {
	return &PatientFirestoreRepository{Client: client}
}

func (repo *PatientFirestoreRepository) Driver() string {
	return constvars.PatientStoreDriverFirestore
}

func (repo *PatientFirestoreRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	snap, err := repo.Client.Collection(constvars.PatientCollection).Doc(patientID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient (%s): %w", patientID, err)
	}

	var patient models.Patient
	if err := snap.DataTo(&patient); err != nil {
		return nil, fmt.Errorf("decode patient (%s): %w", patientID, err)
	}
	if patient.IDNumber == "" {
		patient.IDNumber = patientID
	}
	return &patient, nil
}

func (repo *PatientFirestoreRepository) AppendFolderItems(ctx context.Context, patientID string, items []models.FolderItem) error {
	elems := make([]interface{}, len(items))
	for i := range items {
		elems[i] = items[i]
	}

	_, err := repo.Client.Collection(constvars.PatientCollection).Doc(patientID).Update(ctx, []firestore.Update{
		{Path: constvars.PatientFolderField, Value: firestore.ArrayUnion(elems...)},
	})
	if err != nil {
		return fmt.Errorf("append folder items (%s): %w", patientID, err)
	}
	return nil
}

func (repo *PatientFirestoreRepository) Upsert(ctx context.Context, patient *models.Patient) error {
	_, err := repo.Client.Collection(constvars.PatientCollection).Doc(patient.IDNumber).Set(ctx, patient)
	if err != nil {
		return fmt.Errorf("set patient (%s): %w", patient.IDNumber, err)
	}
	return nil
}

func isNotFound(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.NotFound
}
