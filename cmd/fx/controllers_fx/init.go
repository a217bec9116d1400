package controllers_fx

import (
	"go.uber.org/fx"

	"memberpay/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewMemberController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewAdminController))
