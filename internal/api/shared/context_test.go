package shared

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 32, "trace ID should be 32 characters")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), traceID)
}

func TestGetTraceID(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), TraceIDKey, 42)
		assert.Empty(t, GetTraceID(ctx))
	})

	t.Run("explicit", func(t *testing.T) {
		ctx := WithTraceID(context.Background(), "abc")
		assert.Equal(t, "abc", GetTraceID(ctx))
	})
}

func TestNewTraceIDUnique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := NewTraceID()
		_, dup := seen[id]
		assert.False(t, dup, "trace IDs should not repeat")
		seen[id] = struct{}{}
	}
}
