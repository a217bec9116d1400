package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memberpay/internal/models/db_models"
	"memberpay/internal/models/request_models"
	"memberpay/internal/services"
	"memberpay/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

func (n *NotificationController) List(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	notifications, err := n.notificationService.ListAll(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Notifications retrieved")
}

func (n *NotificationController) ListUnread(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	notifications, err := n.notificationService.ListUnread(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Unread notifications retrieved")
}

func (n *NotificationController) CountUnread(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	count, err := n.notificationService.CountUnread(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"count": count}, "Unread notification count retrieved")
}

func (n *NotificationController) MarkRead(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.NotificationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := n.notificationService.MarkRead(c.Request.Context(), memberID, uuid.MustParse(req.NotificationID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification marked as read")
}

func (n *NotificationController) Delete(c *gin.Context) {
	memberID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.NotificationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	isAdmin := c.GetString("Role") == string(db_models.AccountTypeAdministrator)
	if err := n.notificationService.Delete(c.Request.Context(), memberID, isAdmin, uuid.MustParse(req.NotificationID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification deleted")
}
