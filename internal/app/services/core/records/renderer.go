package records

import (
	"fmt"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"strings"
	"time"
)

// IsReference reports whether content points at a stored asset rather than
// holding inline text. The prefixes match records already in the store.
func IsReference(content string) bool {
	return strings.HasPrefix(content, "http") || strings.HasPrefix(content, constvars.BlobReferenceHead)
}

// Render projects a patient into its display view. It is pure: the same
// patient always yields the same view, cards in folder order.
func Render(patient *models.Patient) *models.RecordView {
	view := &models.RecordView{
		Name:     patient.Name,
		IDNumber: patient.IDNumber,
		DOB:      patient.DOB,
		Phone:    patient.Phone,
		Cards:    []models.RecordCard{},
	}
	if view.IDNumber == "" {
		view.IDNumber = constvars.NotAvailablePlaceholder
	}

	if len(patient.Folder) == 0 {
		view.Placeholder = constvars.NoRecordsPlaceholder
		return view
	}

	for _, item := range patient.Folder {
		view.Cards = append(view.Cards, renderCard(item))
	}
	return view
}

func renderCard(item models.FolderItem) models.RecordCard {
	card := models.RecordCard{
		Type:  item.Type,
		Title: item.Title,
	}
	if item.UploadedAt != "" {
		card.UploadedAt = fmt.Sprintf(constvars.UploadedAtLabel, formatUploadDate(item.UploadedAt))
	}
	if item.Notes != "" {
		card.Notes = fmt.Sprintf(constvars.NotesLabel, item.Notes)
	}

	switch {
	case item.Type.IsVisual():
		card.Kind = models.CardKindImage
		card.Href = item.Content
		card.Label = constvars.ViewFullSizeLabel
	case IsReference(item.Content):
		card.Kind = models.CardKindLink
		card.Href = item.Content
		card.Label = constvars.ViewDocumentLabel
		if item.FileName != "" {
			card.Label = fmt.Sprintf("%s (%s)", constvars.ViewDocumentLabel, item.FileName)
		}
	default:
		card.Kind = models.CardKindText
		card.Body = item.Content
	}
	return card
}

func formatUploadDate(uploadedAt string) string {
	parsed, err := time.Parse(time.RFC3339, uploadedAt)
	if err != nil {
		return uploadedAt
	}
	return parsed.Format("2006-01-02")
}
