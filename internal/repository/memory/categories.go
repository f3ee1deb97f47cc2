package memory

import (
	"context"
	"sort"

	"github.com/khitstore/khit-backend/internal/domain"
)

// CategoryRepo lists the in-memory category tree.
type CategoryRepo struct {
	state *State
}

func (r *CategoryRepo) List(_ context.Context, activeOnly bool) ([]domain.Category, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	out := make([]domain.Category, 0, len(r.state.categories))
	for _, c := range r.state.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out, nil
}
