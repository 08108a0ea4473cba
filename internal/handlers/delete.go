package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=delete.go -destination=mock_delete.go -package=handlers

// WishDeleter defines the interface that the service must implement.
type WishDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteWishRequest represents the JSON body for deleting a wish
// swagger:model DeleteWishRequest
type DeleteWishRequest struct {
	// required: true
	// example: 42
	ID *int64 `json:"id" validate:"required"`
}

// NewDeleteWishHandler returns an HTTP handler deleting a wish. Deleting a
// missing wish still succeeds. The admin password is checked by middleware.
// @Summary Delete a wish
// @Description Deletes a wish by id. Requires the X-Admin-Password header.
// @Tags wishes
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "Admin password"
// @Param request body handlers.DeleteWishRequest true "Wish id"
// @Success 200 {object} handlers.MessageResponse "Wish deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid body"
// @Failure 403 {object} handlers.ErrorResponse "Invalid admin password"
// @Failure 500 {object} handlers.ErrorResponse "Storage error"
// @Router / [delete]
func NewDeleteWishHandler(svc WishDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteWishRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if err := validateStruct(&req); err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), *req.ID); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: MessageWishDeleted})
	}
}
