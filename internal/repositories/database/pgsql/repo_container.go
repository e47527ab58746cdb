package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository to the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ApartmentRepo:    newPgxApartmentRepository(dbPool),
		AgreementRepo:    newPgxAgreementRepository(dbPool),
		CouponRepo:       newPgxCouponRepository(dbPool),
		AnnouncementRepo: newPgxAnnouncementRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
	}
}
