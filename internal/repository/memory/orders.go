package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// OrderRepo manages in-memory orders.
type OrderRepo struct {
	state *State
}

func (r *OrderRepo) List(_ context.Context) ([]domain.Order, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	out := make([]domain.Order, 0, len(r.state.orders))
	for _, o := range r.state.orders {
		out = append(out, cloneOrder(o))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (domain.Order, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for _, o := range r.state.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return domain.Order{}, fmt.Errorf("order %q: %w", id, domain.ErrNotFound)
}

func (r *OrderRepo) Create(_ context.Context, input repository.OrderInput) (domain.Order, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	now := time.Now()
	order := domain.Order{
		ID:             "ord-" + domain.RandomSuffix(),
		OrderNumber:    input.OrderNumber,
		CustomerID:     input.CustomerID,
		CustomerInfo:   input.CustomerInfo,
		Items:          append([]domain.OrderItem{}, input.Items...),
		Subtotal:       input.Subtotal,
		ShippingFee:    input.ShippingFee,
		Total:          input.Total,
		DeliveryMethod: input.DeliveryMethod,
		PaymentMethod:  input.PaymentMethod,
		Status:         domain.OrderStatusPending,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	r.state.orders = append([]domain.Order{order}, r.state.orders...)
	return cloneOrder(order), nil
}

func (r *OrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	if !status.IsValid() {
		return domain.Order{}, fmt.Errorf("order status %q: %w", status, domain.ErrValidation)
	}

	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i := range r.state.orders {
		if r.state.orders[i].ID != id {
			continue
		}
		r.state.orders[i].Status = status
		r.state.orders[i].UpdatedAt = time.Now()
		return cloneOrder(r.state.orders[i]), nil
	}
	return domain.Order{}, fmt.Errorf("order %q: %w", id, domain.ErrNotFound)
}
