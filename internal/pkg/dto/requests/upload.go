package requests

// UploadDocuments holds the text fields of the multipart upload form; the
// files themselves are read from the "files" part.
type UploadDocuments struct {
	Source string `validate:"omitempty,oneof=file-picker camera"`
	Title  string `validate:"max=200"`
	Type   string `validate:"omitempty,folder_type"`
	Notes  string `validate:"max=2000"`
}
