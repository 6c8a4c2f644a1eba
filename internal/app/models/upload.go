package models

import "io"

type UploadSource string

const (
	UploadSourceFilePicker UploadSource = "file-picker"
	UploadSourceCamera     UploadSource = "camera"
)

// PendingFile is one locally selected file waiting to be pushed to object storage.
type PendingFile struct {
	FileName    string
	ContentType string
	Size        int64
	Source      UploadSource
	Open        func() (io.ReadCloser, error)
}

// PendingUpload lives for a single upload submission and is discarded afterwards.
type PendingUpload struct {
	Files []PendingFile
	Title string
	Type  FolderItemType
	Notes string
}

type FilePreview struct {
	FileName string `json:"file_name"`
	SizeMB   string `json:"size_mb"`
	Kind     string `json:"kind"`
}

// Select adds files from one source. Picking from the other source replaces
// whatever was pending, so a batch never mixes sources.
func (u *PendingUpload) Select(source UploadSource, files ...PendingFile) {
	if len(u.Files) > 0 && u.Files[0].Source != source {
		u.Files = nil
	}
	for _, file := range files {
		file.Source = source
		u.Files = append(u.Files, file)
	}
}

// Sources returns the distinct sources present in the pending list.
func (u *PendingUpload) Sources() []UploadSource {
	var sources []UploadSource
	seen := make(map[UploadSource]bool)
	for _, file := range u.Files {
		if !seen[file.Source] {
			seen[file.Source] = true
			sources = append(sources, file.Source)
		}
	}
	return sources
}
