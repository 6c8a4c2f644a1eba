package utils

import (
	"strings"
	"testing"
	"time"

	"patient-records-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobReference_RoundTrip(t *testing.T) {
	objectKey := GenerateObjectKey("8001015009087", "scan #1?v=2 100%.pdf", time.UnixMilli(1700000000000))

	ref := EncodeBlobReference(objectKey)
	assert.True(t, strings.HasPrefix(ref, constvars.BlobReferenceHead))
	assert.NotContains(t, strings.TrimPrefix(ref, constvars.BlobReferenceHead), "/")

	decoded, err := DecodeBlobReference(ref)
	require.NoError(t, err)
	assert.Equal(t, objectKey, decoded)

	decoded, err = DecodeBlobReference(strings.TrimPrefix(ref, constvars.BlobReferenceHead))
	require.NoError(t, err)
	assert.Equal(t, objectKey, decoded)
}

func TestDecodeBlobReference_Rejects(t *testing.T) {
	_, err := DecodeBlobReference("blob:%%%")
	assert.Error(t, err)

	_, err = DecodeBlobReference(EncodeBlobReference("other-prefix/secret.txt"))
	assert.Error(t, err)
}

func TestPatientObjectPrefix(t *testing.T) {
	objectKey := GenerateObjectKey("P101", "a.txt", time.UnixMilli(1))
	assert.Equal(t, "patient-documents/P101/1_a.txt", objectKey)
	assert.True(t, strings.HasPrefix(objectKey, PatientObjectPrefix("P101")))
	assert.False(t, strings.HasPrefix(objectKey, PatientObjectPrefix("P10")))
}

func TestBuildPublicObjectURL_EscapesFileName(t *testing.T) {
	got := BuildPublicObjectURL(constvars.GCSPublicHost, "bucket", "patient-documents/ID/1_scan #1.pdf")
	assert.Equal(t, "https://storage.googleapis.com/bucket/patient-documents/ID/1_scan%20%231.pdf", got)
}

func TestBlobContentDisposition(t *testing.T) {
	tests := []struct {
		contentType string
		expected    string
	}{
		{contentType: "image/png", expected: "inline"},
		{contentType: "image/jpeg", expected: "inline"},
		{contentType: "application/pdf", expected: "inline"},
		{contentType: "text/html", expected: "attachment; filename=1_a.txt"},
		{contentType: "text/html; charset=utf-8", expected: "attachment; filename=1_a.txt"},
		{contentType: "image/svg+xml", expected: "attachment; filename=1_a.txt"},
		{contentType: "application/octet-stream", expected: "attachment; filename=1_a.txt"},
		{contentType: "", expected: "attachment; filename=1_a.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, BlobContentDisposition(tt.contentType, "patient-documents/P101/1_a.txt"))
		})
	}
}
