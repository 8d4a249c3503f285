package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxItemQuantity is the stored ceiling per cart entry. A property is
// either in the cart or not; an add that would push the stored quantity
// past the ceiling is rejected instead of clamped.
const MaxItemQuantity = 1

type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PropertyID primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	Quantity   int                `bson:"quantity" json:"quantity"`
}

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AddItem merges the requested quantity into the cart. A repeated add for
// the same property increments the existing entry, it never creates a
// second one.
func (c *Cart) AddItem(propertyID primitive.ObjectID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity()
	}
	for i := range c.Items {
		if c.Items[i].PropertyID == propertyID {
			if c.Items[i].Quantity+quantity > MaxItemQuantity {
				return ErrQuantityLimit()
			}
			c.Items[i].Quantity += quantity
			return nil
		}
	}
	if quantity > MaxItemQuantity {
		return ErrQuantityLimit()
	}
	c.Items = append(c.Items, CartItem{
		ID:         primitive.NewObjectID(),
		PropertyID: propertyID,
		Quantity:   quantity,
	})
	return nil
}

// RemoveItem drops the entry with the given subdocument id.
func (c *Cart) RemoveItem(itemID primitive.ObjectID) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ResolvedCartItem is the denormalized view returned to clients, with the
// property document in place of its id.
type ResolvedCartItem struct {
	ID       primitive.ObjectID `json:"_id"`
	Property *Property          `json:"propertyId"`
	Quantity int                `json:"quantity"`
}

type ResolvedCart struct {
	ID        primitive.ObjectID `json:"_id"`
	UserID    primitive.ObjectID `json:"userId"`
	Items     []ResolvedCartItem `json:"items"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
