package models

import "time"

// FeeBreakdown is the platform/seller split for a single charge.
// All amounts are in minor currency units.
type FeeBreakdown struct {
	TotalAmount       int64   `json:"total_amount"`
	PlatformFeeAmount int64   `json:"platform_fee_amount"`
	SellerAmount      int64   `json:"seller_amount"`
	FeePercent        float64 `json:"fee_percent"`
}

// PaymentRecord is a payment-log entry written by the webhook
// reconciler when a checkout session completes. Keyed by the payment
// intent id, so redelivery overwrites rather than duplicates.
type PaymentRecord struct {
	PaymentIntentID string    `json:"payment_intent_id"`
	SessionID       string    `json:"session_id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	SellerAccountID string    `json:"seller_account_id"`
	ProductID       string    `json:"product_id"`
	PlatformFee     int64     `json:"platform_fee"`
	CreatedAt       time.Time `json:"created_at"`
}
