package db_models

// Subscription is the recurring membership plan for one account tier.
// One plan per tier; only Amount is mutable.
type Subscription struct {
	BaseModel
	AccountType AccountType `gorm:"uniqueIndex"`
	Amount      float64

	Transactions []Transaction `gorm:"foreignKey:SubscriptionID"`
}
