package domain

import "time"

// CustomerInfo is the contact snapshot captured at checkout.
type CustomerInfo struct {
	Name    string `json:"name"              bson:"name"`
	Email   string `json:"email"             bson:"email"`
	Phone   string `json:"phone"             bson:"phone"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
}

// OrderItem is one purchased line of an order. Name, color, and price are
// denormalized at order time so later catalog edits do not rewrite history.
type OrderItem struct {
	ProductID      string  `json:"productId"      bson:"productId"`
	ColorVariantID string  `json:"colorVariantId" bson:"colorVariantId"`
	Name           string  `json:"name"           bson:"name"`
	Size           string  `json:"size"           bson:"size"`
	Color          string  `json:"color"          bson:"color"`
	Quantity       int     `json:"quantity"       bson:"quantity"`
	Price          float64 `json:"price"          bson:"price"`
}

// Order is a placed storefront order.
type Order struct {
	ID             string         `json:"_id"                  bson:"_id"`
	OrderNumber    string         `json:"orderNumber"          bson:"orderNumber"`
	CustomerID     string         `json:"customerId,omitempty" bson:"customerId,omitempty"`
	CustomerInfo   CustomerInfo   `json:"customerInfo"         bson:"customerInfo"`
	Items          []OrderItem    `json:"items"                bson:"items"`
	Subtotal       float64        `json:"subtotal"             bson:"subtotal"`
	ShippingFee    float64        `json:"shippingFee"          bson:"shippingFee"`
	Total          float64        `json:"total"                bson:"total"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"       bson:"deliveryMethod"`
	PaymentMethod  string         `json:"paymentMethod"        bson:"paymentMethod"`
	Status         OrderStatus    `json:"status"               bson:"status"`
	Notes          string         `json:"notes,omitempty"      bson:"notes,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"            bson:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"            bson:"updatedAt"`
}
