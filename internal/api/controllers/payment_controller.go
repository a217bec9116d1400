package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memberpay/internal/models/request_models"
	"memberpay/internal/models/response_models"
	"memberpay/internal/services"
	"memberpay/pkg/middleware"
	"memberpay/pkg/utils"
)

type PaymentController struct {
	reconciliationService services.ReconciliationServiceInterface
}

func NewPaymentController(reconciliationService services.ReconciliationServiceInterface) *PaymentController {
	return &PaymentController{
		reconciliationService: reconciliationService,
	}
}

// PaySubscription verifies a subscription payment reference with the
// gateway and records the result.
func (p *PaymentController) PaySubscription(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.SubscriptionPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	txn, err := p.reconciliationService.SettleSubscriptionPayment(
		c.Request.Context(), memberID, uuid.MustParse(req.SubscriptionID), req.RefID)
	if err != nil {
		middleware.RequestLogger(c).WithError(err).
			WithField("reference", req.RefID).Warn("subscription settlement failed")
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTransactionResponse(txn), "Transaction Successful")
}

// PayDueCallback verifies a due payment reference with the gateway and
// records the result.
func (p *PaymentController) PayDueCallback(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.DuePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	txn, err := p.reconciliationService.SettleDuePayment(
		c.Request.Context(), memberID, uuid.MustParse(req.DueID), req.RefID)
	if err != nil {
		middleware.RequestLogger(c).WithError(err).
			WithField("reference", req.RefID).Warn("due settlement failed")
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTransactionResponse(txn), "Transaction Successful")
}

// UploadManualReceipt stores an offline payment receipt. The resulting
// ledger entry stays pending until an administrator reviews it.
func (p *PaymentController) UploadManualReceipt(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.ManualReceiptRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	content, filename, ok := readUpload(c, "receipt")
	if !ok {
		return
	}

	txn, err := p.reconciliationService.SubmitManualReceipt(
		c.Request.Context(), memberID, uuid.MustParse(req.DueID), content, filename)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTransactionResponse(txn),
		"Receipt uploaded, awaiting review.")
}
