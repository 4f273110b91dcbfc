package domain

import "time"

// Mailer sends a single email. Either html or text may be empty.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// TokenIssuer mints signed service tokens for internal calls between
// backend functions.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}
