package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"memberpay/cmd/fx/clients_fx"
	"memberpay/cmd/fx/controllers_fx"
	"memberpay/cmd/fx/credential_fx"
	"memberpay/cmd/fx/db_fx"
	"memberpay/cmd/fx/identity_fx"
	"memberpay/cmd/fx/ledger_fx"
	"memberpay/cmd/fx/mail_fx"
	"memberpay/cmd/fx/membership_fx"
	"memberpay/cmd/fx/notification_fx"
	"memberpay/cmd/fx/reconcile_fx"
	"memberpay/internal/api/controllers"
	"memberpay/internal/config"
	"memberpay/internal/infra"
	"memberpay/internal/models/db_models"
	"memberpay/internal/services"
	"memberpay/pkg/middleware"
)

func main() {
	app := fx.New(
		db_fx.Module,
		clients_fx.Module,
		mail_fx.Module,
		notification_fx.Module,
		identity_fx.Module,
		credential_fx.Module,
		ledger_fx.Module,
		membership_fx.Module,
		reconcile_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB, logger *logrus.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
}

func ProvideRouter(
	logger *logrus.Logger,
	credentialService services.CredentialServiceInterface,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	paymentController *controllers.PaymentController,
	notificationController *controllers.NotificationController,
	adminController *controllers.AdminController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware(logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	RegisterRoutes(r, credentialService, authController, memberController,
		paymentController, notificationController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	credentialService services.CredentialServiceInterface,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	paymentController *controllers.PaymentController,
	notificationController *controllers.NotificationController,
	adminController *controllers.AdminController,
) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/admin/login", authController.AdminLogin)
	authGroup.POST("/password/email", authController.ForgotPassword)
	authGroup.POST("/password/reset", authController.ResetPassword)

	memberGroup := r.Group("/member")
	memberGroup.Use(middleware.SessionAuthMiddleware(credentialService))
	memberGroup.GET("/profile", memberController.Profile)
	memberGroup.POST("/profile/update", memberController.UpdateProfile)
	memberGroup.POST("/profile/update/password", memberController.ChangePassword)
	memberGroup.POST("/profile/upload/profile-picture", memberController.UploadProfilePicture)
	memberGroup.GET("/subscription", memberController.MySubscription)
	memberGroup.POST("/subscription/payment", paymentController.PaySubscription)
	memberGroup.GET("/payments", memberController.UnpaidDues)
	memberGroup.POST("/payment/callback", paymentController.PayDueCallback)
	memberGroup.POST("/upload/manual/receipt", paymentController.UploadManualReceipt)
	memberGroup.GET("/payments/approved", memberController.ApprovedPayments)
	memberGroup.GET("/payments/pending", memberController.PendingPayments)
	memberGroup.GET("/notifications", notificationController.List)
	memberGroup.GET("/notifications/unread", notificationController.ListUnread)
	memberGroup.GET("/notifications/unread/count", notificationController.CountUnread)
	memberGroup.POST("/notification/read", notificationController.MarkRead)
	memberGroup.POST("/notification/delete", notificationController.Delete)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.SessionAuthMiddleware(credentialService))
	adminGroup.Use(middleware.RoleMiddleware(string(db_models.AccountTypeAdministrator)))
	adminGroup.POST("/member/activate", adminController.ActivateMember)
	adminGroup.POST("/member/deactivate", adminController.DeactivateMember)
	adminGroup.GET("/dues", adminController.ListDues)
	adminGroup.POST("/dues/post", adminController.CreateDue)
	adminGroup.POST("/dues/update", adminController.UpdateDue)
	adminGroup.POST("/dues/delete", adminController.DeleteDue)
	adminGroup.GET("/dues/all/payments", adminController.ListDuePayments)
	adminGroup.POST("/dues/update/transaction", adminController.ReviewTransaction)
	adminGroup.GET("/category", adminController.ListCategories)
	adminGroup.POST("/category/post", adminController.CreateCategory)
	adminGroup.GET("/subscription", adminController.ListSubscriptions)
	adminGroup.POST("/subscription", adminController.UpdateSubscription)
	adminGroup.GET("/subscription/transactions", adminController.ListSubscriptionPayments)
}
