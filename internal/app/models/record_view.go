package models

type CardKind string

const (
	CardKindText  CardKind = "text"
	CardKindLink  CardKind = "link"
	CardKindImage CardKind = "image"
)

// RecordView is the display projection of one patient: a header followed by
// one card per folder item, in folder order.
type RecordView struct {
	Name        string       `json:"name"`
	IDNumber    string       `json:"id_number"`
	DOB         string       `json:"dob"`
	Phone       string       `json:"phone"`
	Cards       []RecordCard `json:"cards"`
	Placeholder string       `json:"placeholder,omitempty"`
}

type RecordCard struct {
	Kind       CardKind       `json:"kind"`
	Type       FolderItemType `json:"type"`
	Title      string         `json:"title"`
	Body       string         `json:"body,omitempty"`
	Href       string         `json:"href,omitempty"`
	Label      string         `json:"label,omitempty"`
	UploadedAt string         `json:"uploaded_at,omitempty"`
	Notes      string         `json:"notes,omitempty"`
}
