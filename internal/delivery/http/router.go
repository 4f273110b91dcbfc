package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"funlet/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	smsWebhookController *controllers.SMSWebhookController,
	rsvpController *controllers.RSVPController,
	invitationController *controllers.InvitationController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Twilio webhook. Registered without a method pattern so the controller
	// can answer non-POST methods with the legacy 405 JSON body.
	mux.HandleFunc("/webhooks/sms", smsWebhookController.HandleInbound)

	// API Routes
	mux.HandleFunc("POST /rsvp-data", rsvpController.GetRSVPData)
	mux.HandleFunc("POST /invitations/send", invitationController.SendInvitations)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
