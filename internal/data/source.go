// Package data decides which repository backend serves a process and keeps a
// small trail of those decisions for diagnostics.
package data

import (
	"strings"
	"time"
)

// Source names a repository backend.
type Source string

const (
	SourceMemory Source = "memory"
	SourceMongo  Source = "mongo"
)

// Selection records one backend decision. Requested is empty when nothing
// was asked for explicitly; FallbackReason is set when the decision differs
// from the request or from the preferred hosted backend.
type Selection struct {
	Source          Source    `json:"source"`
	Requested       Source    `json:"requested,omitempty"`
	MongoConfigured bool      `json:"mongoConfigured"`
	FallbackReason  string    `json:"fallbackReason,omitempty"`
	At              time.Time `json:"at"`
}

// ParseSource normalizes a configured source name; unknown values come back
// empty.
func ParseSource(raw string) Source {
	switch Source(strings.ToLower(strings.TrimSpace(raw))) {
	case SourceMemory:
		return SourceMemory
	case SourceMongo:
		return SourceMongo
	}
	return ""
}

// ResolveSource picks the backend. An explicit memory request always wins; a
// mongo request needs the connection configured and otherwise falls back to
// memory with a reason; no request prefers mongo when configured.
func ResolveSource(requested string, mongoConfigured bool) Selection {
	sel := Selection{
		Requested:       ParseSource(requested),
		MongoConfigured: mongoConfigured,
		At:              time.Now(),
	}

	switch sel.Requested {
	case SourceMemory:
		sel.Source = SourceMemory
	case SourceMongo:
		if mongoConfigured {
			sel.Source = SourceMongo
		} else {
			sel.Source = SourceMemory
			sel.FallbackReason = "data source is set to mongo, but the MongoDB connection is not configured"
		}
	default:
		if mongoConfigured {
			sel.Source = SourceMongo
		} else {
			sel.Source = SourceMemory
			sel.FallbackReason = "MongoDB connection is not configured; falling back to the in-memory source"
		}
	}
	return sel
}
