package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-wish-tree/internal/logger"
	"github.com/sbilibin2017/gw-wish-tree/internal/middlewares"
)

//go:generate mockgen -source=update.go -destination=mock_update.go -package=handlers

// Update actions
const (
	ActionFulfill        = "fulfill"
	ActionResetFulfilled = "reset_fulfilled"
)

// WishUpdater defines the interface that the service must implement.
type WishUpdater interface {
	Fulfill(ctx context.Context, id int64, fulfilledBy string, contact *string) error
	ResetFulfilled(ctx context.Context) (int64, error)
}

// AdminChecker checks the admin password for privileged actions.
type AdminChecker interface {
	GetPasswordFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, password string) error
}

// UpdateWishRequest represents the JSON body of PUT requests
// swagger:model UpdateWishRequest
type UpdateWishRequest struct {
	// fulfill or reset_fulfilled
	// required: true
	// example: fulfill
	Action string `json:"action"`

	// Wish id, required for fulfill
	// example: 42
	ID *int64 `json:"id"`

	// Benefactor name, required for fulfill
	// example: Bob
	FulfilledBy string `json:"fulfilledBy"`

	// Benefactor contact
	// example: bob@example.com
	Contact *string `json:"contact"`
}

// FulfillWishRequest is the validated part of a fulfill request.
type FulfillWishRequest struct {
	ID          *int64  `json:"id" validate:"required"`
	FulfilledBy string  `json:"fulfilledBy" validate:"required"`
	Contact     *string `json:"contact"`
}

// NewUpdateWishHandler returns an HTTP handler dispatching PUT actions.
// fulfill is public; reset_fulfilled requires the admin password.
// Unknown actions are answered with 405.
// @Summary Fulfill a wish or reset fulfilled wishes
// @Description action=fulfill books an available wish (409 if it is already booked or missing). action=reset_fulfilled requires X-Admin-Password and returns every fulfilled wish to available.
// @Tags wishes
// @Accept json
// @Produce json
// @Param X-Admin-Password header string false "Admin password, required for reset_fulfilled"
// @Param request body handlers.UpdateWishRequest true "Action"
// @Success 200 {object} handlers.MessageResponse "Done"
// @Failure 400 {object} handlers.ErrorResponse "Invalid body"
// @Failure 403 {object} handlers.ErrorResponse "Invalid admin password"
// @Failure 405 {object} handlers.ErrorResponse "Unknown action"
// @Failure 409 {object} handlers.ErrorResponse "Wish is already reserved"
// @Failure 500 {object} handlers.ErrorResponse "Storage error"
// @Router / [put]
func NewUpdateWishHandler(svc WishUpdater, admin AdminChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req UpdateWishRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		switch req.Action {
		case ActionFulfill:
			fulfill := FulfillWishRequest{ID: req.ID, FulfilledBy: req.FulfilledBy, Contact: req.Contact}
			if err := validateStruct(&fulfill); err != nil {
				writeError(w, r, err)
				return
			}
			if fulfill.Contact != nil && *fulfill.Contact == "" {
				fulfill.Contact = nil
			}

			if err := svc.Fulfill(ctx, *fulfill.ID, fulfill.FulfilledBy, fulfill.Contact); err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, MessageResponse{Message: MessageWishFulfilled})

		case ActionResetFulfilled:
			if !isAdmin(ctx, r, admin) {
				writeJSON(w, http.StatusForbidden, ErrorResponse{Error: middlewares.AdminErrorMessage})
				return
			}

			n, err := svc.ResetFulfilled(ctx)
			if err != nil {
				writeError(w, r, err)
				return
			}
			logger.FromContext(ctx).Infow("fulfilled wishes reset", "count", n)
			writeJSON(w, http.StatusOK, MessageResponse{Message: MessageFulfilledReset})

		default:
			logger.FromContext(ctx).Warnw("unsupported update action", "action", req.Action)
			writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: MessageMethodNotAllowed})
		}
	}
}

func isAdmin(ctx context.Context, r *http.Request, admin AdminChecker) bool {
	password, err := admin.GetPasswordFromRequest(ctx, r)
	if err != nil {
		logger.FromContext(ctx).Warnw("admin authorization failed", "err", err)
		return false
	}
	if err := admin.Validate(ctx, password); err != nil {
		logger.FromContext(ctx).Warnw("admin authorization failed", "err", err)
		return false
	}
	return true
}
