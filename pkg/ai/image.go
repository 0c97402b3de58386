package ai

import (
	"encoding/base64"
	"strings"

	apperr "agrow/pkg/errors"
)

// ParseDataURI decodes "data:<mime>;base64,<payload>" into an Image. Only
// base64 image payloads are accepted.
func ParseDataURI(uri string) (Image, error) {
	const op = "ai.parse_data_uri"
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return Image{}, apperr.Newf(apperr.KindInvalid, op, "imageUrl must be a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, apperr.Newf(apperr.KindInvalid, op, "data URI has no payload")
	}
	params := strings.Split(meta, ";")
	mime := strings.ToLower(strings.TrimSpace(params[0]))
	if !strings.HasPrefix(mime, "image/") {
		return Image{}, apperr.Newf(apperr.KindInvalid, op, "unsupported media type %q", mime)
	}
	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}
	if !isBase64 {
		return Image{}, apperr.Newf(apperr.KindInvalid, op, "data URI must be base64 encoded")
	}
	payload = strings.TrimSpace(payload)
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return Image{}, apperr.E(apperr.KindInvalid, op, err)
		}
	}
	if len(data) == 0 {
		return Image{}, apperr.Newf(apperr.KindInvalid, op, "image is empty")
	}
	return Image{Data: data, MIMEType: mime}, nil
}
