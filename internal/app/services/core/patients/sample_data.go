package patients

import (
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
)

// freeFormSampleIDs maps the national ids of the sample table to the short
// codes used when the service runs with the free-form identifier scheme.
var freeFormSampleIDs = map[string]string{
	"0211120351080": "P101",
	"8803121234567": "P102",
	"7501251234567": "P103",
}

// SamplePatients returns a fresh copy of the built-in demo table, keyed the
// way the given identifier scheme expects.
func SamplePatients(scheme string) []models.Patient {
	patients := []models.Patient{
		{
			IDNumber: "0211120351080",
			Name:     "Alice Johnson",
			DOB:      "1995-07-20",
			Phone:    "+27-82-123-4567",
			Folder: []models.FolderItem{
				{
					Type:    models.FolderItemTypeDocument,
					Title:   "Consultation Report - 2023-10-15",
					Content: "Patient presented with a persistent cough and fatigue. Prescribed antibiotics and advised rest.",
				},
				{
					Type:    models.FolderItemTypeDocument,
					Title:   "Lab Results - 2023-09-28",
					Content: "Blood tests show normal white blood cell count. Cholesterol levels are slightly elevated.",
				},
				{
					Type:    models.FolderItemTypeImage,
					Title:   "Chest X-ray Scan - 2023-10-14",
					Content: "https://placehold.co/400x300/e2e8f0/000000?text=Chest+X-ray",
				},
				{
					Type:    models.FolderItemTypeDocument,
					Title:   "Allergy Information",
					Content: "Patient has a known allergy to penicillin.",
				},
				{
					Type:    models.FolderItemTypeDocument,
					Title:   "Prescription - 2023-11-05",
					Content: "Medication: Paracetamol, 500mg. Dosage: One tablet every 6 hours as needed for pain.",
				},
			},
		},
		{
			IDNumber: "8803121234567",
			Name:     "Bob Williams",
			DOB:      "1988-03-12",
			Phone:    "+27-83-234-5678",
			Folder: []models.FolderItem{
				{
					Type:    models.FolderItemTypeDocument,
					Title:   "Physical Examination Report - 2024-01-20",
					Content: "Routine check-up. Patient is in good health with no major concerns. Advised to maintain a healthy diet and regular exercise.",
				},
				{
					Type:    models.FolderItemTypeDocument,
					Title:   "Vaccination History",
					Content: "Received annual flu shot on 2023-11-01. All childhood immunizations are up-to-date.",
				},
			},
		},
		{
			IDNumber: "7501251234567",
			Name:     "Charlie Davis",
			DOB:      "1975-01-25",
			Phone:    "+27-84-345-6789",
			Folder: []models.FolderItem{
				{
					Type:    models.FolderItemTypeDocument,
					Title:   "Cardiology Report - 2023-06-10",
					Content: "Patient reports occasional palpitations. ECG results are stable. Recommended follow-up in 6 months.",
				},
			},
		},
	}

	if scheme == constvars.IdentifierSchemeFreeForm {
		for i := range patients {
			patients[i].IDNumber = freeFormSampleIDs[patients[i].IDNumber]
		}
	}
	return patients
}
