package dto

type CheckoutSessionRequest struct {
	ApplicationID string `json:"application_id"`
}

type CheckoutSessionResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id"`
}

type ConfirmPaymentResponse struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"application_id"`
	PaymentStatus string `json:"payment_status"`
}
