package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondValidationError turns gin binding failures into the 422
// envelope with per-field errors.
func RespondValidationError(c *gin.Context, err error) {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
	}
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Status:  "error",
		Code:    http.StatusUnprocessableEntity,
		Message: "Please see errors parameter for all errors.",
		TraceID: traceID(c),
		Errors:  fields,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "min":
		return "Value is below the allowed minimum."
	case "max":
		return "Value exceeds the allowed maximum."
	default:
		return "Invalid value."
	}
}

// HandleServiceError translates the service error taxonomy into the
// HTTP envelope. Not-found, business-rule, gateway and ownership
// failures all surface as 401 by API convention; only storage faults
// are a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrDueNotFound),
		errors.Is(err, ErrSubscriptionNotFound),
		errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrNotificationNotFound),
		errors.Is(err, ErrCategoryNotFound):
		RespondError(c, http.StatusUnauthorized, "Not found in our database.")
	case errors.Is(err, ErrResetCodeNotFound):
		RespondError(c, http.StatusUnauthorized, "Code doesn't exist in our database.")
	case errors.Is(err, ErrResetCodeExpired):
		RespondError(c, http.StatusUnauthorized, "Password reset code expired")
	case errors.Is(err, ErrDuplicateReference):
		RespondError(c, http.StatusUnauthorized, "Payment reference already recorded.")
	case errors.Is(err, ErrIncorrectPassword):
		RespondError(c, http.StatusUnauthorized, "Incorrect Password!")
	case errors.Is(err, ErrTokenRevoked):
		RespondError(c, http.StatusUnauthorized, "Session expired, please log in again.")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusUnauthorized, "Email already registered.")
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusUnauthorized, "Username already taken.")
	case errors.Is(err, ErrAccountPending):
		RespondError(c, http.StatusUnauthorized, "Please check back, while the administrator process your informations.")
	case errors.Is(err, ErrAccountDeactivated):
		RespondError(c, http.StatusUnauthorized, "Account deactivated, please contact the administrator.")
	case errors.Is(err, ErrDueInactive):
		RespondError(c, http.StatusUnauthorized, "Due is no longer active.")
	case errors.Is(err, ErrNotAnAdministrator):
		RespondError(c, http.StatusUnauthorized, "You are not an Administrator!")
	case errors.Is(err, ErrNotAMember):
		RespondError(c, http.StatusUnauthorized, "You are not a member.")
	case errors.Is(err, ErrInvalidStatusTarget):
		RespondError(c, http.StatusUnauthorized, "Invalid status transition.")
	case errors.Is(err, ErrGateway):
		RespondError(c, http.StatusUnauthorized, "Transaction failed.")
	case errors.Is(err, ErrNotOwner):
		RespondError(c, http.StatusUnauthorized, "Notification doesn't belong to you.")
	case errors.Is(err, ErrDatabaseError):
		logrus.WithError(err).Error("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logrus.WithError(err).Error("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
