package domain

import "context"

// Contact is an invitee's identity. Contacts are not profile holders.
// swagger:model Contact
type Contact struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	PhoneNumber string `json:"phone_number"`
}

// ContactRepository defines read access to contacts
type ContactRepository interface {
	GetByID(ctx context.Context, id string) (*Contact, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Contact, error)
}
