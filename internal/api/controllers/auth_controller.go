package controllers

import (
	"github.com/gin-gonic/gin"

	"memberpay/internal/models/request_models"
	"memberpay/internal/models/response_models"
	"memberpay/internal/services"
	"memberpay/pkg/utils"
)

type AuthController struct {
	identityService   services.IdentityServiceInterface
	credentialService services.CredentialServiceInterface
}

func NewAuthController(
	identityService services.IdentityServiceInterface,
	credentialService services.CredentialServiceInterface,
) *AuthController {
	return &AuthController{
		identityService:   identityService,
		credentialService: credentialService,
	}
}

func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	member, _, err := a.identityService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewMemberResponse(member),
		"Registration successful, please check back while the administrator process your informations.")
}

func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	token, member, err := a.credentialService.Login(c.Request.Context(), req.LoginDetails, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{
		Token:  token,
		Member: response_models.NewMemberResponse(member),
	}, "Login successful")
}

func (a *AuthController) AdminLogin(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	token, member, err := a.credentialService.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{
		Token:  token,
		Member: response_models.NewMemberResponse(member),
	}, "Login successful")
}

func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := a.credentialService.IssueResetCode(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "A reset code has been sent to your email.")
}

func (a *AuthController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := a.credentialService.ConsumeResetCode(c.Request.Context(), req.Code, req.Password); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password reset successful, please login.")
}
