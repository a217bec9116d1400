package request_models

type MemberActionRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type DueCreateRequest struct {
	CategoryID  string  `json:"payment_category_id" binding:"required,uuid"`
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	StartDate   int64   `json:"start_date" binding:"required"`
	EndDate     int64   `json:"end_date" binding:"required,gtefield=StartDate"`
}

type DueUpdateRequest struct {
	DueID       string  `json:"due_id" binding:"required,uuid"`
	CategoryID  string  `json:"payment_category_id" binding:"required,uuid"`
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	StartDate   int64   `json:"start_date" binding:"required"`
	EndDate     int64   `json:"end_date" binding:"required,gtefield=StartDate"`
}

type DueDeleteRequest struct {
	DueID string `json:"due_id" binding:"required,uuid"`
}

type TransactionReviewRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
	Status        string `json:"status" binding:"required,oneof=success failed pending"`
}

type SubscriptionUpdateRequest struct {
	SubscriptionID string  `json:"subscription_id" binding:"required,uuid"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
}

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}
