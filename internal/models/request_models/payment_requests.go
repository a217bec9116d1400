package request_models

type SubscriptionPaymentRequest struct {
	SubscriptionID string `json:"subscription_id" binding:"required,uuid"`
	RefID          string `json:"ref_id" binding:"required"`
}

type DuePaymentRequest struct {
	DueID string `json:"due_id" binding:"required,uuid"`
	RefID string `json:"ref_id" binding:"required"`
}

// ManualReceiptRequest is bound from the multipart form; the receipt
// file itself is read off the request separately.
type ManualReceiptRequest struct {
	DueID string `form:"due_id" binding:"required,uuid"`
}
