package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a free-form text comment keyed by the order item it was left
// on. Author identity is stored by id only and resolved at read time.
type Comment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      uint64             `json:"user_id" bson:"user_id"`
	OrderItemID uint64             `json:"order_item_id" bson:"order_item_id"`
	Content     string             `json:"content" bson:"content"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}
