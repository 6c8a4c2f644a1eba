package storage

import (
	"net/url"
	"testing"

	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCSReference_KeepsFileNameInPath(t *testing.T) {
	for _, fileName := range []string{"scan #1.pdf", "a?b.pdf", "100% done.png", "plain.pdf"} {
		objectKey := "patient-documents/8001015009087/1700000000000_" + fileName

		ref := utils.BuildPublicObjectURL(constvars.GCSPublicHost, "records-bucket", objectKey)

		parsed, err := url.Parse(ref)
		require.NoError(t, err, fileName)
		assert.Equal(t, "https", parsed.Scheme)
		assert.Equal(t, constvars.GCSPublicHost, parsed.Host)
		assert.Equal(t, "/records-bucket/"+objectKey, parsed.Path, fileName)
		assert.Empty(t, parsed.RawQuery, fileName)
		assert.Empty(t, parsed.Fragment, fileName)
	}
}
