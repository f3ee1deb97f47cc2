package domain

import "time"

// User is a storefront user row, mirrored from the authentication layer via
// UpsertFromAuth. AuthUserID links it to the auth library's authUsers record.
type User struct {
	ID         string    `json:"_id"             bson:"_id"`
	Email      string    `json:"email"           bson:"email"`
	Name       string    `json:"name"            bson:"name"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Role       Role      `json:"role"            bson:"role"`
	AuthUserID string    `json:"authUserId"      bson:"authUserId"`
	IsActive   bool      `json:"isActive"        bson:"isActive"`
	CreatedAt  time.Time `json:"createdAt"       bson:"createdAt"`
}
