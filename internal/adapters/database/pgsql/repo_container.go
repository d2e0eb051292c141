package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	walletRepo := newPgxWalletRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool, walletRepo)
	escrowRepo := newPgxEscrowRepository(dbPool, walletRepo)
	ratingRepo := newPgxRatingRepository(dbPool)
	conversionRepo := newPgxConversionRepository(dbPool)
	triggerRepo := newPgxTriggerRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		WalletRepo:     walletRepo,
		OrderRepo:      orderRepo,
		EscrowRepo:     escrowRepo,
		RatingRepo:     ratingRepo,
		ConversionRepo: conversionRepo,
		TriggerRepo:    triggerRepo,
	}
}
