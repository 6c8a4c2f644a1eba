package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"path"
	"patient-records-service/internal/pkg/constvars"
	"strings"
)

var errBlobReferenceMalformed = errors.New(constvars.ErrDevBlobReferenceMalformed)

// PatientObjectPrefix is the key prefix every upload of patientID is stored under.
func PatientObjectPrefix(patientID string) string {
	return fmt.Sprintf("%s/%s/", constvars.BlobObjectPrefix, patientID)
}

// EncodeBlobReference turns an object key into the "blob:<token>" value kept
// in a patient folder. The token is URL safe and does not expire.
func EncodeBlobReference(objectKey string) string {
	return constvars.BlobReferenceHead + base64.RawURLEncoding.EncodeToString([]byte(objectKey))
}

// DecodeBlobReference accepts the full reference or the bare token.
func DecodeBlobReference(reference string) (string, error) {
	token := strings.TrimPrefix(reference, constvars.BlobReferenceHead)
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(string(decoded), constvars.BlobObjectPrefix+"/") {
		return "", errBlobReferenceMalformed
	}
	return string(decoded), nil
}

// BuildPublicObjectURL escapes the object key so characters such as '#' or
// '?' in an uploaded file name stay part of the path.
func BuildPublicObjectURL(host, bucketName, objectKey string) string {
	objectURL := url.URL{
		Scheme: "https",
		Host:   host,
		Path:   "/" + bucketName + "/" + objectKey,
	}
	return objectURL.String()
}

// BlobContentDisposition lets images and PDFs open in the browser and turns
// every other type, SVG included, into a download.
func BlobContentDisposition(contentType, objectKey string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil && mediaType != constvars.MIMEImageSVG &&
		(strings.HasPrefix(mediaType, constvars.MIMEImagePrefix) || mediaType == constvars.MIMEApplicationPDF) {
		return constvars.DispositionInline
	}

	disposition := mime.FormatMediaType(constvars.DispositionAttachment, map[string]string{"filename": path.Base(objectKey)})
	if disposition == "" {
		return constvars.DispositionAttachment
	}
	return disposition
}
