package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-wish-tree/internal/models"
)

//go:generate mockgen -source=list.go -destination=mock_list.go -package=handlers

// WishLister defines the interface that the service must implement.
type WishLister interface {
	List(ctx context.Context) ([]models.Wish, error)
}

// ListWishesResponse represents the list of wishes
// swagger:model ListWishesResponse
type ListWishesResponse struct {
	// Wishes, most recently created first
	Wishes []models.Wish `json:"wishes"`
}

// NewListWishesHandler returns an HTTP handler listing all wishes.
// @Summary List wishes
// @Description Returns every wish ordered by creation time, most recent first. No authentication required.
// @Tags wishes
// @Produce json
// @Success 200 {object} handlers.ListWishesResponse "Wishes"
// @Failure 500 {object} handlers.ErrorResponse "Storage error"
// @Router / [get]
func NewListWishesHandler(svc WishLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wishes, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if wishes == nil {
			wishes = []models.Wish{}
		}

		writeJSON(w, http.StatusOK, ListWishesResponse{Wishes: wishes})
	}
}
