package request_models

type RegisterRequest struct {
	AccountType          string `json:"account_type" binding:"required,max=255"`
	FirstName            string `json:"first_name" binding:"required,max=255"`
	LastName             string `json:"last_name" binding:"required,max=255"`
	Username             string `json:"username" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
	PhoneNumber          string `json:"phone_number" binding:"required,min=10,max=255"`

	Gender              string `json:"gender"`
	MaritalStatus       string `json:"marital_status"`
	State               string `json:"state"`
	Address             string `json:"address"`
	PlaceOfBusiness     string `json:"place_business_employment"`
	NatureOfBusiness    string `json:"nature_business_employment"`
	ProfessionalBodies  string `json:"membership_professional_bodies"`
	InsolvencyExp       string `json:"previous_insolvency_work_experience"`
	RefereeEmailAddress string `json:"referee_email_address"`
}

// LoginDetails accepts a username or an email; lookup matches either.
type LoginRequest struct {
	LoginDetails string `json:"login_details" binding:"required,max=255"`
	Password     string `json:"password" binding:"required,min=8"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Code                 string `json:"code" binding:"required"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}
