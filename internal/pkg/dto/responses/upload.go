package responses

import "patient-records-service/internal/app/models"

type UploadDocuments struct {
	UploadedCount int                  `json:"uploaded_count"`
	Previews      []models.FilePreview `json:"previews"`
	Records       *models.RecordView   `json:"records"`
}
