package data

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSource(t *testing.T) {
	assert.Equal(t, SourceMemory, ParseSource("memory"))
	assert.Equal(t, SourceMongo, ParseSource("  MONGO "))
	assert.Equal(t, Source(""), ParseSource("postgres"))
	assert.Equal(t, Source(""), ParseSource(""))
}

func TestResolveSource(t *testing.T) {
	tests := []struct {
		name       string
		requested  string
		configured bool
		want       Source
		fallback   bool
	}{
		{"explicit memory ignores configuration", "memory", true, SourceMemory, false},
		{"explicit mongo when configured", "mongo", true, SourceMongo, false},
		{"explicit mongo without configuration falls back", "mongo", false, SourceMemory, true},
		{"no request prefers mongo when configured", "", true, SourceMongo, false},
		{"no request falls back to memory", "", false, SourceMemory, true},
		{"unknown request treated as no request", "postgres", true, SourceMongo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := ResolveSource(tt.requested, tt.configured)
			assert.Equal(t, tt.want, sel.Source)
			assert.Equal(t, tt.configured, sel.MongoConfigured)
			if tt.fallback {
				assert.NotEmpty(t, sel.FallbackReason)
			} else {
				assert.Empty(t, sel.FallbackReason)
			}
			assert.False(t, sel.At.IsZero())
		})
	}
}

func TestBreadcrumbs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("suppresses consecutive duplicates", func(t *testing.T) {
		b := NewBreadcrumbs()
		sel := ResolveSource("memory", false)

		b.Record(logger, sel)
		b.Record(logger, sel)
		assert.Len(t, b.List(), 1)

		b.Record(logger, ResolveSource("mongo", true))
		assert.Len(t, b.List(), 2)

		// The first decision again is no longer consecutive.
		b.Record(logger, sel)
		assert.Len(t, b.List(), 3)
	})

	t.Run("caps the trail at fifty entries", func(t *testing.T) {
		b := NewBreadcrumbs()
		for i := 0; i < 60; i++ {
			sel := ResolveSource("memory", false)
			sel.FallbackReason = fmt.Sprintf("reason %d", i)
			b.Record(logger, sel)
		}

		got := b.List()
		assert.Len(t, got, 50)
		assert.Equal(t, "reason 10", got[0].FallbackReason)
		assert.Equal(t, "reason 59", got[49].FallbackReason)
	})

	t.Run("nil logger is fine", func(t *testing.T) {
		b := NewBreadcrumbs()
		b.Record(nil, ResolveSource("", true))
		assert.Len(t, b.List(), 1)
	})
}
