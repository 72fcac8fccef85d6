package imagegrpc

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// codecName keeps the standard content-subtype so any protobuf server,
// regardless of language, accepts the frames.
const codecName = "proto"

// wireCodec encodes the hand-written messages in this package. It is forced on
// both the client connection and the test/fake servers.
type wireCodec struct{}

var _ encoding.Codec = wireCodec{}

func (wireCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(message)
	if !ok {
		return nil, fmt.Errorf("imagegrpc: cannot marshal %T", v)
	}
	return m.marshal(), nil
}

func (wireCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(message)
	if !ok {
		return fmt.Errorf("imagegrpc: cannot unmarshal into %T", v)
	}
	return m.unmarshal(data)
}

func (wireCodec) Name() string {
	return codecName
}
