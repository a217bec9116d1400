package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memberpay/internal/models/db_models"
	"memberpay/internal/models/request_models"
	"memberpay/internal/models/response_models"
	"memberpay/internal/services"
	"memberpay/pkg/utils"
)

// maxUploadBytes caps avatar and receipt uploads at 5MB.
const maxUploadBytes = 5 << 20

type MemberController struct {
	identityService   services.IdentityServiceInterface
	membershipService services.MembershipServiceInterface
	ledgerService     services.LedgerServiceInterface
}

func NewMemberController(
	identityService services.IdentityServiceInterface,
	membershipService services.MembershipServiceInterface,
	ledgerService services.LedgerServiceInterface,
) *MemberController {
	return &MemberController{
		identityService:   identityService,
		membershipService: membershipService,
		ledgerService:     ledgerService,
	}
}

// callerID pulls the authenticated member id set by the auth middleware.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("member_id")
	if raw == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	return id, true
}

func readUpload(c *gin.Context, field string) ([]byte, string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, field+" file is required")
		return nil, "", false
	}
	if fileHeader.Size > maxUploadBytes {
		utils.RespondError(c, http.StatusBadRequest, "File exceeds the upload size limit")
		return nil, "", false
	}
	f, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read uploaded file")
		return nil, "", false
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read uploaded file")
		return nil, "", false
	}
	return content, fileHeader.Filename, true
}

func (m *MemberController) Profile(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	member, err := m.identityService.FindByID(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewMemberResponse(member), "Profile retrieved")
}

func (m *MemberController) UpdateProfile(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := m.identityService.UpdateProfile(c.Request.Context(), memberID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}

func (m *MemberController) ChangePassword(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := m.identityService.ChangePassword(c.Request.Context(), memberID, req.OldPassword, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password changed successfully")
}

func (m *MemberController) UploadProfilePicture(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	content, filename, ok := readUpload(c, "profile_picture")
	if !ok {
		return
	}

	avatarURL, err := m.identityService.UploadAvatar(c.Request.Context(), memberID, content, filename)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"avatar": avatarURL}, "Profile picture uploaded")
}

// MySubscription returns the subscription plan priced for the caller's
// account type.
func (m *MemberController) MySubscription(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	member, err := m.identityService.FindByID(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sub, err := m.membershipService.SubscriptionForAccountType(c.Request.Context(), member.AccountType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"subscription":  sub,
		"is_subscribed": member.IsSubscribed,
	}, "Subscription retrieved")
}

// UnpaidDues lists active dues the caller has no successful payment for.
func (m *MemberController) UnpaidDues(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	dues, err := m.membershipService.ListUnpaidDues(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dues, "Unpaid dues retrieved")
}

func (m *MemberController) ApprovedPayments(c *gin.Context) {
	m.paymentsByStatus(c, db_models.TxnStatusSuccess)
}

func (m *MemberController) PendingPayments(c *gin.Context) {
	m.paymentsByStatus(c, db_models.TxnStatusPending)
}

func (m *MemberController) paymentsByStatus(c *gin.Context, status db_models.TransactionStatus) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	txns, err := m.ledgerService.ListByMemberAndStatus(c.Request.Context(), memberID, status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTransactionList(txns), "Payments retrieved")
}
