package ai

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "agrow/pkg/errors"
)

func TestParseDataURI(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 1, 2, 3}
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	img, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.MIMEType)
	assert.Equal(t, raw, img.Data)
}

func TestParseDataURI_Unpadded(t *testing.T) {
	uri := "data:image/png;base64," + base64.RawStdEncoding.EncodeToString([]byte("ab"))

	img, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), img.Data)
}

func TestParseDataURI_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"not a uri":   "https://example.com/leaf.jpg",
		"no comma":    "data:image/png;base64",
		"not image":   "data:text/plain;base64,aGVsbG8=",
		"not base64":  "data:image/png,hello",
		"bad payload": "data:image/png;base64,***",
		"no bytes":    "data:image/png;base64,",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDataURI(in)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.ErrInvalid))
		})
	}
}
