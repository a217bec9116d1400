package request_models

// UpdateProfileRequest carries optional fields explicitly: a nil
// pointer means "leave unchanged", a non-nil pointer applies the
// value. Email changes re-run the uniqueness check.
type UpdateProfileRequest struct {
	FirstName           *string `json:"first_name"`
	LastName            *string `json:"last_name"`
	Email               *string `json:"email" binding:"omitempty,email"`
	PhoneNumber         *string `json:"phone_number" binding:"omitempty,min=10"`
	Gender              *string `json:"gender"`
	MaritalStatus       *string `json:"marital_status"`
	State               *string `json:"state"`
	Address             *string `json:"address"`
	PlaceOfBusiness     *string `json:"place_business_employment"`
	NatureOfBusiness    *string `json:"nature_business_employment"`
	ProfessionalBodies  *string `json:"membership_professional_bodies"`
	InsolvencyExp       *string `json:"previous_insolvency_work_experience"`
	RefereeEmailAddress *string `json:"referee_email_address"`
}

type ChangePasswordRequest struct {
	OldPassword          string `json:"old_password" binding:"required"`
	NewPassword          string `json:"new_password" binding:"required,min=8"`
	PasswordConfirmation string `json:"new_password_confirmation" binding:"required,eqfield=NewPassword"`
}

type NotificationActionRequest struct {
	NotificationID string `json:"notification_id" binding:"required,uuid"`
}
