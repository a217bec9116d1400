package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memberpay/internal/models/db_models"
	"memberpay/internal/models/request_models"
	"memberpay/internal/models/response_models"
	"memberpay/internal/services"
	"memberpay/pkg/utils"
)

type AdminController struct {
	reconciliationService services.ReconciliationServiceInterface
	membershipService     services.MembershipServiceInterface
	ledgerService         services.LedgerServiceInterface
}

func NewAdminController(
	reconciliationService services.ReconciliationServiceInterface,
	membershipService services.MembershipServiceInterface,
	ledgerService services.LedgerServiceInterface,
) *AdminController {
	return &AdminController{
		reconciliationService: reconciliationService,
		membershipService:     membershipService,
		ledgerService:         ledgerService,
	}
}

func (a *AdminController) ActivateMember(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.MemberActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	member, err := a.reconciliationService.ActivateMember(c.Request.Context(), adminID, uuid.MustParse(req.UserID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewMemberResponse(member), "Member activated")
}

func (a *AdminController) DeactivateMember(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.MemberActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	member, err := a.reconciliationService.DeactivateMember(c.Request.Context(), adminID, uuid.MustParse(req.UserID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewMemberResponse(member), "Member deactivated")
}

func (a *AdminController) ListDues(c *gin.Context) {
	dues, err := a.membershipService.ListActiveDues(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dues, "Dues retrieved")
}

func (a *AdminController) CreateDue(c *gin.Context) {
	var req request_models.DueCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	due, err := a.membershipService.CreateDue(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, due, "Due created successfully")
}

func (a *AdminController) UpdateDue(c *gin.Context) {
	var req request_models.DueUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	due, err := a.membershipService.UpdateDue(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, due, "Due updated successfully")
}

// DeleteDue deactivates the due so it stops appearing to members while
// its payment history stays intact.
func (a *AdminController) DeleteDue(c *gin.Context) {
	var req request_models.DueDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := a.membershipService.DeactivateDue(c.Request.Context(), uuid.MustParse(req.DueID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Due deactivated")
}

func (a *AdminController) ListDuePayments(c *gin.Context) {
	txns, err := a.ledgerService.ListDuePayments(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTransactionList(txns), "Due payments retrieved")
}

func (a *AdminController) ReviewTransaction(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.TransactionReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	err := a.reconciliationService.AdminReviewDuePayment(c.Request.Context(),
		adminID, uuid.MustParse(req.TransactionID), db_models.TransactionStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Transaction updated")
}

func (a *AdminController) ListCategories(c *gin.Context) {
	categories, err := a.membershipService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories retrieved")
}

func (a *AdminController) CreateCategory(c *gin.Context) {
	var req request_models.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	category, err := a.membershipService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category created successfully")
}

func (a *AdminController) ListSubscriptions(c *gin.Context) {
	subs, err := a.membershipService.ListSubscriptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Subscriptions retrieved")
}

func (a *AdminController) UpdateSubscription(c *gin.Context) {
	var req request_models.SubscriptionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	sub, err := a.membershipService.UpdateSubscriptionAmount(c.Request.Context(),
		uuid.MustParse(req.SubscriptionID), req.Amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription updated successfully")
}

func (a *AdminController) ListSubscriptionPayments(c *gin.Context) {
	txns, err := a.ledgerService.ListSubscriptionPayments(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTransactionList(txns), "Subscription payments retrieved")
}
