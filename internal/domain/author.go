package domain

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Field names the gateway knows about on an otherwise opaque author document.
const (
	AuthorImageGUIDField = "autorLibroId"
	AuthorImageField     = "imagen"
)

// ErrAuthorNotObject is returned when an image is attached to a document that
// is not a JSON object.
var ErrAuthorNotObject = errors.New("author document is not a JSON object")

// Author is an author document exactly as the REST upstream returned it.
// The gateway reads autorLibroId and may add imagen; every other byte is kept.
type Author []byte

// IsAbsent reports whether the upstream returned no author: an empty body,
// null, false, 0 or an empty string.
func (a Author) IsAbsent() bool {
	if !gjson.ValidBytes(a) {
		return len(a) == 0
	}
	res := gjson.ParseBytes(a)
	switch res.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return res.Num == 0
	case gjson.String:
		return res.Str == ""
	default:
		return false
	}
}

// ImageGUID returns the autorLibroId of the author, or "" if it has none.
func (a Author) ImageGUID() string {
	return gjson.GetBytes(a, AuthorImageGUIDField).String()
}

// WithImage returns a copy of the author with imagen set to the base64
// encoding of image. The receiver is not modified.
func (a Author) WithImage(image []byte) (Author, error) {
	if !gjson.ParseBytes(a).IsObject() {
		return nil, ErrAuthorNotObject
	}
	src := make([]byte, len(a))
	copy(src, a)
	out, err := sjson.SetBytes(src, AuthorImageField, base64.StdEncoding.EncodeToString(image))
	if err != nil {
		return nil, fmt.Errorf("failed to attach image: %w", err)
	}
	return Author(out), nil
}
