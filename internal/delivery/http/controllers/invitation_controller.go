package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"funlet/internal/delivery/http/helpers"
	"funlet/internal/domain"
)

// SendInvitationsRequest is the request body for POST /invitations/send.
type SendInvitationsRequest struct {
	EventID        string   `json:"event_id"`
	InvitingUserID string   `json:"inviting_user_id"`
	ContactIDs     []string `json:"contact_ids"`
}

// Validate implements Validator.
func (s SendInvitationsRequest) Validate() []string {
	var errs []string
	if s.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if s.InvitingUserID == "" {
		errs = append(errs, "inviting_user_id is required")
	}
	if len(s.ContactIDs) == 0 {
		errs = append(errs, "contact_ids must not be empty")
	}
	return errs
}

// SendInvitationsSuccessResponse is the success envelope for POST /invitations/send (200).
type SendInvitationsSuccessResponse struct {
	Data  *domain.SendInvitationsResult `json:"data"`
	Error *helpers.APIError             `json:"error"`
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// SendInvitations godoc
// @Summary Send SMS invitations for an event
// @Description Creates invitation rows with unique codes and texts each selected contact. The inviting user must be the event creator. Contacts that fail (already invited, bad phone, SMS error) are reported individually; the rest still go out.
// @Tags invitations
// @Accept json
// @Produce json
// @Param request body SendInvitationsRequest true "Event, inviter, and contacts"
// @Success 200 {object} controllers.SendInvitationsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/send [post]
func (c *InvitationController) SendInvitations(w http.ResponseWriter, r *http.Request) {
	var req SendInvitationsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.SendInvitations(r.Context(), domain.SendInvitationsInput{
		EventID:        req.EventID,
		InvitingUserID: req.InvitingUserID,
		ContactIDs:     req.ContactIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only the event creator can send invitations")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid input")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
