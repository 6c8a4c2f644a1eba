package models

// Blob is a stored upload resolved for download. In-process blobs carry their
// bytes; object store blobs carry a short-lived URL to redirect to instead.
type Blob struct {
	ObjectKey   string
	ContentType string
	Content     []byte
	RedirectURL string
}
