package imagegrpc

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire messages of the greet.ImageService schema in api/proto/image.proto.
// Field numbers are part of the contract with the image service.

// ImageRequest is the SaveImage request.
type ImageRequest struct {
	Guid  string
	Name  string
	Image []byte
}

// SaveImageReply is the SaveImage response.
type SaveImageReply struct {
	Success bool
	Message string
}

// GuidRequest is the ObtenerImagenPorGuid request.
type GuidRequest struct {
	Guid string
}

// ImageByGuidReply is the ObtenerImagenPorGuid response.
type ImageByGuidReply struct {
	Success bool
	Image   []byte
}

// message is implemented by every wire message so the codec can encode it.
type message interface {
	marshal() []byte
	unmarshal(b []byte) error
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

// fieldFunc consumes the value of a known field and reports the bytes used.
// It returns handled=false for fields it does not recognise.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (n int, handled bool)

// decode walks b, dispatching known fields to fn and skipping unknown ones.
func decode(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, handled := fn(num, typ, b)
		if !handled {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, bool) {
	if typ != protowire.BytesType {
		return 0, false
	}
	v, n := protowire.ConsumeString(b)
	if n >= 0 {
		*dst = v
	}
	return n, true
}

func consumeBytes(typ protowire.Type, b []byte, dst *[]byte) (int, bool) {
	if typ != protowire.BytesType {
		return 0, false
	}
	v, n := protowire.ConsumeBytes(b)
	if n >= 0 {
		*dst = append([]byte(nil), v...)
	}
	return n, true
}

func consumeBool(typ protowire.Type, b []byte, dst *bool) (int, bool) {
	if typ != protowire.VarintType {
		return 0, false
	}
	v, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*dst = protowire.DecodeBool(v)
	}
	return n, true
}

func (m *ImageRequest) marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Guid)
	b = appendString(b, 2, m.Name)
	return appendBytes(b, 3, m.Image)
}

func (m *ImageRequest) unmarshal(b []byte) error {
	*m = ImageRequest{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Guid)
		case 2:
			return consumeString(typ, b, &m.Name)
		case 3:
			return consumeBytes(typ, b, &m.Image)
		}
		return 0, false
	})
}

func (m *SaveImageReply) marshal() []byte {
	var b []byte
	b = appendBool(b, 1, m.Success)
	return appendString(b, 2, m.Message)
}

func (m *SaveImageReply) unmarshal(b []byte) error {
	*m = SaveImageReply{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool) {
		switch num {
		case 1:
			return consumeBool(typ, b, &m.Success)
		case 2:
			return consumeString(typ, b, &m.Message)
		}
		return 0, false
	})
}

func (m *GuidRequest) marshal() []byte {
	return appendString(nil, 1, m.Guid)
}

func (m *GuidRequest) unmarshal(b []byte) error {
	*m = GuidRequest{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool) {
		if num == 1 {
			return consumeString(typ, b, &m.Guid)
		}
		return 0, false
	})
}

func (m *ImageByGuidReply) marshal() []byte {
	var b []byte
	b = appendBool(b, 1, m.Success)
	return appendBytes(b, 2, m.Image)
}

func (m *ImageByGuidReply) unmarshal(b []byte) error {
	*m = ImageByGuidReply{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool) {
		switch num {
		case 1:
			return consumeBool(typ, b, &m.Success)
		case 2:
			return consumeBytes(typ, b, &m.Image)
		}
		return 0, false
	})
}
