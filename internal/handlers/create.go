package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-wish-tree/internal/models"
)

//go:generate mockgen -source=create.go -destination=mock_create.go -package=handlers

// WishCreator defines the interface that the service must implement.
type WishCreator interface {
	Create(ctx context.Context, wish models.NewWish) (int64, error)
}

// PositionRequest is a point on the tree canvas
// swagger:model PositionRequest
type PositionRequest struct {
	// required: true
	// example: 10.5
	X *float64 `json:"x" validate:"required"`

	// required: true
	// example: -20
	Y *float64 `json:"y" validate:"required"`
}

// CreateWishRequest represents the JSON body for adding a wish
// swagger:model CreateWishRequest
type CreateWishRequest struct {
	// required: true
	// example: Alice
	ChildName string `json:"childName" validate:"required"`

	// required: true
	// example: 7
	Age *int `json:"age" validate:"required"`

	// required: true
	// example: bike
	Wish string `json:"wish" validate:"required"`

	// required: true
	// example: toys
	Category string `json:"category" validate:"required"`

	// required: true
	// example: #FFD700
	Color string `json:"color" validate:"required"`

	// required: true
	Position *PositionRequest `json:"position" validate:"required"`
}

// CreateWishResponse represents a successful creation
// swagger:model CreateWishResponse
type CreateWishResponse struct {
	// Generated wish id
	// example: 42
	ID int64 `json:"id"`

	// example: Wish added
	Message string `json:"message"`
}

// NewCreateWishHandler returns an HTTP handler adding a wish. The admin
// password is checked by middleware before this handler runs.
// @Summary Add a wish
// @Description Creates an available wish. Requires the X-Admin-Password header.
// @Tags wishes
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "Admin password"
// @Param request body handlers.CreateWishRequest true "Wish"
// @Success 201 {object} handlers.CreateWishResponse "Wish added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid body"
// @Failure 403 {object} handlers.ErrorResponse "Invalid admin password"
// @Failure 500 {object} handlers.ErrorResponse "Storage error"
// @Router / [post]
func NewCreateWishHandler(svc WishCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWishRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if err := validateStruct(&req); err != nil {
			writeError(w, r, err)
			return
		}

		id, err := svc.Create(r.Context(), models.NewWish{
			ChildName: req.ChildName,
			Age:       *req.Age,
			Wish:      req.Wish,
			Category:  req.Category,
			Color:     req.Color,
			PositionX: *req.Position.X,
			PositionY: *req.Position.Y,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreateWishResponse{ID: id, Message: MessageWishCreated})
	}
}
