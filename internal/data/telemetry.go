package data

import (
	"log/slog"
	"sync"
)

// breadcrumbCap bounds the retained selection history.
const breadcrumbCap = 50

// Breadcrumbs keeps the most recent backend selections. Re-recording the
// same decision back to back is suppressed, so repeated resolution on a hot
// path does not flood the trail.
type Breadcrumbs struct {
	mu      sync.Mutex
	lastKey string
	entries []Selection
}

func NewBreadcrumbs() *Breadcrumbs {
	return &Breadcrumbs{}
}

// Record logs the selection and appends it to the trail.
func (b *Breadcrumbs) Record(logger *slog.Logger, sel Selection) {
	key := selectionKey(sel)

	b.mu.Lock()
	defer b.mu.Unlock()

	if key == b.lastKey {
		return
	}
	b.lastKey = key

	if logger != nil {
		attrs := []any{
			slog.String("source", string(sel.Source)),
			slog.Bool("mongo_configured", sel.MongoConfigured),
		}
		if sel.Requested != "" {
			attrs = append(attrs, slog.String("requested", string(sel.Requested)))
		}
		if sel.FallbackReason != "" {
			attrs = append(attrs, slog.String("fallback_reason", sel.FallbackReason))
			logger.Warn("data source selected", attrs...)
		} else {
			logger.Info("data source selected", attrs...)
		}
	}

	b.entries = append(b.entries, sel)
	if len(b.entries) > breadcrumbCap {
		b.entries = b.entries[len(b.entries)-breadcrumbCap:]
	}
}

// List returns a copy of the trail, oldest first.
func (b *Breadcrumbs) List() []Selection {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Selection, len(b.entries))
	copy(out, b.entries)
	return out
}

// selectionKey ignores the timestamp so identical decisions collapse.
func selectionKey(sel Selection) string {
	key := string(sel.Source) + "|" + string(sel.Requested) + "|" + sel.FallbackReason
	if sel.MongoConfigured {
		return key + "|configured"
	}
	return key
}
