package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// OrderRepo manages hosted orders.
type OrderRepo struct {
	db *mongodrv.Database
}

func (r *OrderRepo) collection() *mongodrv.Collection {
	return r.db.Collection(collOrders)
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	cursor, err := r.collection().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return domain.Order{}, fmt.Errorf("order %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (r *OrderRepo) Create(ctx context.Context, input repository.OrderInput) (domain.Order, error) {
	now := time.Now()
	order := domain.Order{
		ID:             uuid.NewString(),
		OrderNumber:    input.OrderNumber,
		CustomerID:     input.CustomerID,
		CustomerInfo:   input.CustomerInfo,
		Items:          input.Items,
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

	if _, err := r.collection().InsertOne(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	if !status.IsValid() {
		return domain.Order{}, fmt.Errorf("order status %q: %w", status, domain.ErrValidation)
	}

	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now()},
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.Order{}, fmt.Errorf("order %q: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}
