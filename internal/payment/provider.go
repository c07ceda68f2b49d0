// Package payment wraps the external Checkout-style payment provider.
package payment

// LineItem describes the single fee charged at checkout. Amount is in the
// currency's smallest unit.
type LineItem struct {
	Name     string
	Amount   int64
	Currency string
	Quantity int
}

// Session is the provider's checkout-session handle. Metadata correlates the
// session back to an application.
type Session struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

const StatusPaid = "paid"

// Provider is the payment collaborator contract. Its internals are a black
// box; only the session status matters here.
type Provider interface {
	CreateSession(item LineItem, customerEmail string, metadata map[string]string, successURL, cancelURL string) (*Session, error)
	RetrieveSession(sessionID string) (*Session, error)
}
