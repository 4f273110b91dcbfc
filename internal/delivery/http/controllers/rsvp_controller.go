package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"funlet/internal/delivery/http/helpers"
	"funlet/internal/domain"
)

// RSVPDataRequest is the request body for POST /rsvp-data.
type RSVPDataRequest struct {
	InvitationCode string `json:"invitation_code"`
}

// Validate implements Validator.
func (r RSVPDataRequest) Validate() []string {
	var errs []string
	if r.InvitationCode == "" {
		errs = append(errs, "invitation_code is required")
	}
	return errs
}

// RSVPDataSuccessResponse is the success envelope for POST /rsvp-data (200).
type RSVPDataSuccessResponse struct {
	Data  *domain.RSVPData  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// GetRSVPData godoc
// @Summary Look up event and RSVP data by invitation code
// @Description Returns the invitation, its contact, the event, the host name, all sent invitations with contacts, and per-status RSVP counts. Backs the guest-facing event page.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param request body RSVPDataRequest true "Invitation code"
// @Success 200 {object} controllers.RSVPDataSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp-data [post]
func (c *RSVPController) GetRSVPData(w http.ResponseWriter, r *http.Request) {
	var req RSVPDataRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	data, err := c.Service.GetRSVPData(r.Context(), req.InvitationCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invitation not found")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invitation_code is required")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, data)
}
