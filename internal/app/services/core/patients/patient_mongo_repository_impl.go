package patients

import (
	"context"
	"fmt"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Database) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Collection(constvars.PatientCollection),
	}
}

func (repo *PatientMongoRepository) Driver() string {
	return constvars.PatientStoreDriverMongo
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := repo.Collection.FindOne(ctx, bson.M{constvars.PatientIDNumberField: patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// AppendFolderItems pushes every item in one update, so either all of them
// land in the folder or none do.
func (repo *PatientMongoRepository) AppendFolderItems(ctx context.Context, patientID string, items []models.FolderItem) error {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{constvars.PatientIDNumberField: patientID},
		bson.M{"$push": bson.M{constvars.PatientFolderField: bson.M{"$each": items}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("patient %s does not exist", patientID)
	}
	return nil
}

func (repo *PatientMongoRepository) Upsert(ctx context.Context, patient *models.Patient) error {
	_, err := repo.Collection.ReplaceOne(ctx,
		bson.M{constvars.PatientIDNumberField: patient.IDNumber},
		patient,
		options.Replace().SetUpsert(true),
	)
	return err
}
