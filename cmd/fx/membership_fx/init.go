package membership_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"memberpay/internal/repositories"
	"memberpay/internal/services"
)

var Module = fx.Provide(
	provideDueRepo, provideSubscriptionRepo, provideMembershipService)

func provideDueRepo(db *gorm.DB) repositories.DueRepository {
	return repositories.NewDueRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideMembershipService(
	dues repositories.DueRepository,
	subscriptions repositories.SubscriptionRepository,
) services.MembershipServiceInterface {
	return services.NewMembershipService(dues, subscriptions)
}
