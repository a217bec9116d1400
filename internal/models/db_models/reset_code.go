package db_models

// ResetCode is a single-use password-reset code. The unique email
// column guarantees at most one live code per address even under
// concurrent forget-password requests; issuing replaces atomically.
type ResetCode struct {
	BaseModel
	Email string `gorm:"uniqueIndex"`
	Code  string `gorm:"index"`
}
