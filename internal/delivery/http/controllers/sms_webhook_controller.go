package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"funlet/internal/domain"
)

// Webhook response bodies. The Twilio webhook predates the standard API
// envelope, so its JSON shapes are written as-is and kept stable for the
// dashboards that consume them.

// SMSWebhookSuccessResponse is the 2xx body for processed inbound messages.
type SMSWebhookSuccessResponse struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message"`
	Response        string          `json:"response,omitempty"`
	EventsCount     *int            `json:"events_count,omitempty"`
	HandlerResponse json.RawMessage `json:"handler_response,omitempty"`
	Suggestion      string          `json:"suggestion,omitempty"`
}

// SMSWebhookErrorResponse is the body for webhook-level failures.
type SMSWebhookErrorResponse struct {
	Error              string `json:"error"`
	Details            string `json:"details,omitempty"`
	FromPhone          string `json:"fromPhone,omitempty"`
	FormattedFromPhone string `json:"formattedFromPhone,omitempty"`
	Debug              string `json:"debug,omitempty"`
}

type SMSWebhookController struct {
	Logger  *slog.Logger
	Service domain.InboundSMSService
}

func NewSMSWebhookController(logger *slog.Logger, svc domain.InboundSMSService) *SMSWebhookController {
	return &SMSWebhookController{
		Logger:  logger,
		Service: svc,
	}
}

// HandleInbound godoc
// @Summary Twilio inbound SMS webhook
// @Description Receives form-encoded inbound message webhooks from Twilio and runs the reply pipeline: host resolution, command classification, digest or AI-handler dispatch. Responses always use the legacy flat JSON shapes.
// @Tags webhooks
// @Accept x-www-form-urlencoded
// @Produce json
// @Param From formData string true "Sender phone number"
// @Param To formData string true "Receiving Twilio number"
// @Param Body formData string true "Message text"
// @Param MessageSid formData string false "Twilio message identifier"
// @Success 200 {object} controllers.SMSWebhookSuccessResponse
// @Failure 404 {object} controllers.SMSWebhookErrorResponse "digest requested by unknown host"
// @Failure 405 {object} controllers.SMSWebhookErrorResponse
// @Failure 500 {object} controllers.SMSWebhookErrorResponse
// @Router /webhooks/sms [post]
func (c *SMSWebhookController) HandleInbound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeWebhookJSON(w, http.StatusMethodNotAllowed, SMSWebhookErrorResponse{
			Error: "Method not allowed",
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		writeWebhookJSON(w, http.StatusInternalServerError, SMSWebhookErrorResponse{
			Error:   "Failed to process SMS webhook",
			Details: err.Error(),
		})
		return
	}

	msg := domain.InboundSMS{
		MessageSID: r.PostFormValue("MessageSid"),
		From:       r.PostFormValue("From"),
		To:         r.PostFormValue("To"),
		Body:       r.PostFormValue("Body"),
		Status:     r.PostFormValue("SmsStatus"),
	}
	if msg.From == "" {
		writeWebhookJSON(w, http.StatusBadRequest, SMSWebhookErrorResponse{
			Error: "Missing required webhook field: From",
		})
		return
	}

	c.Logger.InfoContext(r.Context(), "inbound sms",
		"message_sid", msg.MessageSID, "from", msg.From, "to", msg.To, "status", msg.Status)

	result, err := c.Service.HandleInbound(r.Context(), msg)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "sms webhook processing failed", "err", err)
		writeWebhookJSON(w, http.StatusInternalServerError, SMSWebhookErrorResponse{
			Error:   "Failed to process SMS webhook",
			Details: err.Error(),
		})
		return
	}

	switch result.Kind {
	case domain.InboundDigestSent:
		count := result.EventsCount
		writeWebhookJSON(w, http.StatusOK, SMSWebhookSuccessResponse{
			Success:     true,
			Message:     "Events info sent to host",
			Response:    "events_info",
			EventsCount: &count,
		})
	case domain.InboundNoEvents:
		writeWebhookJSON(w, http.StatusOK, SMSWebhookSuccessResponse{
			Success:  true,
			Message:  "No upcoming events response sent",
			Response: "no_events",
		})
	case domain.InboundForwarded:
		writeWebhookJSON(w, http.StatusOK, SMSWebhookSuccessResponse{
			Success:         true,
			Message:         "Message forwarded to AI handler",
			HandlerResponse: result.HandlerResponse,
		})
	case domain.InboundPatternMatched:
		writeWebhookJSON(w, http.StatusOK, SMSWebhookSuccessResponse{
			Success:         true,
			Message:         "Message processed by pattern matching",
			HandlerResponse: result.HandlerResponse,
		})
	case domain.InboundDispatchFailed:
		writeWebhookJSON(w, http.StatusOK, SMSWebhookSuccessResponse{
			Success:    false,
			Message:    "Message received but could not be processed",
			Suggestion: result.Suggestion,
		})
	case domain.InboundHostNotFound:
		writeWebhookJSON(w, http.StatusNotFound, SMSWebhookErrorResponse{
			Error:              "Host profile not found",
			FromPhone:          result.FromPhone,
			FormattedFromPhone: result.FormattedPhone,
			Debug:              "No profile found for this phone number",
		})
	default:
		c.Logger.ErrorContext(r.Context(), "unknown inbound result kind", "kind", result.Kind)
		writeWebhookJSON(w, http.StatusInternalServerError, SMSWebhookErrorResponse{
			Error: "Failed to process SMS webhook",
		})
	}
}

func writeWebhookJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
