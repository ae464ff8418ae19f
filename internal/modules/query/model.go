// README: Contact-query inbox types.
package query

import "time"

// Query is one message submitted through the contact form. Decoupled from
// the pricing and booking flow entirely.
type Query struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
