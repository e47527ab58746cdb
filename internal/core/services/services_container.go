package services

import (
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		User:         userSvc,
		Apartment:    NewApartmentService(repos.ApartmentRepo),
		Agreement:    NewAgreementService(repos.AgreementRepo, repos.ApartmentRepo),
		Coupon:       NewCouponService(repos.CouponRepo),
		Announcement: NewAnnouncementService(repos.AnnouncementRepo),
		Payment:      NewPaymentService(repos.PaymentRepo),
		Token:        NewTokenService(cfg, userSvc),
	}
}
