package patients

import (
	"context"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PrimaryRepository  contracts.PatientRepository
	FallbackRepository contracts.PatientRepository
	Log                *zap.Logger
}

// NewPatientUsecase reads from primary and falls back to the sample table
// when primary misses or fails. Writes only ever go to primary.
func NewPatientUsecase(primary, fallback contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PrimaryRepository:  primary,
		FallbackRepository: fallback,
		Log:                logger,
	}
}

func (uc *patientUsecase) Lookup(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Lookup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreDriverKey, uc.PrimaryRepository.Driver()),
	)

	patient, err := uc.PrimaryRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Warn("patientUsecase.Lookup primary store failed, using fallback table",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStoreDriverKey, uc.PrimaryRepository.Driver()),
			zap.Error(exceptions.ErrPatientStoreFind(err, uc.PrimaryRepository.Driver())),
		)
	}
	if patient != nil {
		return patient, nil
	}

	if uc.FallbackRepository != nil && uc.FallbackRepository != uc.PrimaryRepository {
		patient, err = uc.FallbackRepository.FindByID(ctx, patientID)
		if err != nil {
			uc.Log.Warn("patientUsecase.Lookup fallback table failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		if patient != nil {
			uc.Log.Info("patientUsecase.Lookup served from fallback table",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return patient, nil
		}
	}

	return nil, exceptions.ErrPatientNotFound(nil, patientID)
}

func (uc *patientUsecase) AppendItems(ctx context.Context, patientID string, items []models.FolderItem) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.AppendItems called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreDriverKey, uc.PrimaryRepository.Driver()),
		zap.Int(constvars.LoggingItemsCountKey, len(items)),
	)

	if err := uc.PrimaryRepository.AppendFolderItems(ctx, patientID, items); err != nil {
		return exceptions.ErrAppendFolderItems(err, uc.PrimaryRepository.Driver())
	}

	uc.Log.Info("patientUsecase.AppendItems succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingItemsCountKey, len(items)),
	)
	return nil
}
