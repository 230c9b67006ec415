// Package imgdata turns backend base64 image payloads into browser-ready data URLs.
package imgdata

import (
	"bytes"
	"encoding/base64"
	"image"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"

	"hotel-portal/internal/pkg/errs"
)

const (
	dataURLPrefix = "data:"
	base64Marker  = ";base64,"
)

var ErrUndecodable = errs.New("image payload is not decodable")

// DataURL wraps a raw base64 payload in a data URL. Values that already are
// data URLs and empty values are returned untouched.
func DataURL(b64 string) string {
	if b64 == "" || strings.HasPrefix(b64, dataURLPrefix) {
		return b64
	}
	mime := "image/jpeg"
	if raw, err := base64.StdEncoding.DecodeString(b64); err == nil {
		if detected := http.DetectContentType(raw); strings.HasPrefix(detected, "image/") {
			mime = detected
		}
	}
	return dataURLPrefix + mime + base64Marker + b64
}

// DataURLs applies DataURL to every element.
func DataURLs(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = DataURL(s)
	}
	return out
}

// Thumbnail downsizes the image to width (aspect preserved) and re-encodes it
// as a JPEG data URL. Images already narrower than width are only wrapped.
func Thumbnail(b64 string, width int) (string, error) {
	if b64 == "" || width <= 0 {
		return DataURL(b64), nil
	}
	payload := b64
	if strings.HasPrefix(b64, dataURLPrefix) {
		if i := strings.Index(b64, base64Marker); i >= 0 {
			payload = b64[i+len(base64Marker):]
		}
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "decode base64"), ErrUndecodable)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "decode image"), ErrUndecodable)
	}
	if img.Bounds().Dx() <= width {
		return DataURL(payload), nil
	}
	return encodeJPEG(imaging.Resize(img, width, 0, imaging.Lanczos))
}

func encodeJPEG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return "", errs.Wrap(err, "encode thumbnail")
	}
	return dataURLPrefix + "image/jpeg" + base64Marker + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
