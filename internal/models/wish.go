package models

import "time"

// Wish statuses
const (
	StatusAvailable = "available"
	StatusFulfilled = "fulfilled"
)

// WishDB represents a wish row in the database
type WishDB struct {
	ID               int64     `json:"id" db:"id"`                               // Server-generated identifier
	ChildName        string    `json:"child_name" db:"child_name"`               // Name of the child who made the wish
	Age              int       `json:"age" db:"age"`                             // Age of the child
	Wish             string    `json:"wish" db:"wish"`                           // Wish text
	Category         string    `json:"category" db:"category"`                   // Wish category (toys, books, ...)
	Color            string    `json:"color" db:"color"`                         // Ornament color on the tree
	PositionX        float64   `json:"position_x" db:"position_x"`               // Horizontal position on the canvas
	PositionY        float64   `json:"position_y" db:"position_y"`               // Vertical position on the canvas
	Status           string    `json:"status" db:"status"`                       // available or fulfilled
	FulfilledBy      *string   `json:"fulfilled_by" db:"fulfilled_by"`           // Benefactor name, set only when fulfilled
	FulfilledContact *string   `json:"fulfilled_contact" db:"fulfilled_contact"` // Benefactor contact, set only when fulfilled
	CreatedAt        time.Time `json:"created_at" db:"created_at"`               // Timestamp when the wish was created
}

// NewWish holds the descriptive fields supplied when a wish is created.
type NewWish struct {
	ChildName string
	Age       int
	Wish      string
	Category  string
	Color     string
	PositionX float64
	PositionY float64
}

// Position is a point on the tree canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wish is the public view of a wish returned by the list endpoint.
// The benefactor contact is never exposed.
type Wish struct {
	ID          int64    `json:"id"`
	ChildName   string   `json:"childName"`
	Age         int      `json:"age"`
	Wish        string   `json:"wish"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Position    Position `json:"position"`
	Status      string   `json:"status"`
	FulfilledBy *string  `json:"fulfilledBy"`
}

// ToWish maps a database row to its public view.
func (w WishDB) ToWish() Wish {
	return Wish{
		ID:          w.ID,
		ChildName:   w.ChildName,
		Age:         w.Age,
		Wish:        w.Wish,
		Category:    w.Category,
		Color:       w.Color,
		Position:    Position{X: w.PositionX, Y: w.PositionY},
		Status:      w.Status,
		FulfilledBy: w.FulfilledBy,
	}
}
