package models

type Patient struct {
	IDNumber string       `json:"idNumber" bson:"idNumber" firestore:"idNumber"`
	Name     string       `json:"name" bson:"name" firestore:"name"`
	DOB      string       `json:"dob" bson:"dob" firestore:"dob"`
	Phone    string       `json:"phone" bson:"phone" firestore:"phone"`
	Folder   []FolderItem `json:"folder" bson:"folder" firestore:"folder"`
}

// Clone returns a deep copy so callers never share the folder slice with a store.
func (p *Patient) Clone() *Patient {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Folder = append([]FolderItem(nil), p.Folder...)
	return &clone
}

type FolderItemType string

const (
	FolderItemTypeDocument     FolderItemType = "document"
	FolderItemTypeImage        FolderItemType = "image"
	FolderItemTypePrescription FolderItemType = "prescription"
	FolderItemTypeLabResult    FolderItemType = "lab-result"
	FolderItemTypeXRay         FolderItemType = "x-ray"
	FolderItemTypeOther        FolderItemType = "other"
)

var FolderItemTypes = []FolderItemType{
	FolderItemTypeDocument,
	FolderItemTypeImage,
	FolderItemTypePrescription,
	FolderItemTypeLabResult,
	FolderItemTypeXRay,
	FolderItemTypeOther,
}

func (t FolderItemType) IsValid() bool {
	for _, known := range FolderItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsVisual reports whether items of this type are shown as image previews.
func (t FolderItemType) IsVisual() bool {
	return t == FolderItemTypeImage || t == FolderItemTypeXRay
}

// FolderItem is one entry in a patient's folder. Content holds inline text or
// a reference (URL or blob reference); the folder is append-only.
type FolderItem struct {
	Type       FolderItemType `json:"type" bson:"type" firestore:"type"`
	Title      string         `json:"title" bson:"title" firestore:"title"`
	Content    string         `json:"content" bson:"content" firestore:"content"`
	Notes      string         `json:"notes,omitempty" bson:"notes,omitempty" firestore:"notes,omitempty"`
	UploadedAt string         `json:"uploadedAt,omitempty" bson:"uploadedAt,omitempty" firestore:"uploadedAt,omitempty"`
	FileName   string         `json:"fileName,omitempty" bson:"fileName,omitempty" firestore:"fileName,omitempty"`
	FileSize   int64          `json:"fileSize,omitempty" bson:"fileSize,omitempty" firestore:"fileSize,omitempty"`
}
