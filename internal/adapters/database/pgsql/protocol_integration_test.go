package pgsql_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zein-l/Currency-exchange-backend/internal/adapters/database/pgsql"
	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
)

// These tests exercise the settlement protocol against a real database: the
// row locks, the balance arithmetic and the single-transition guarantees live
// in SQL and cannot be demonstrated with mocks. Set TEST_DATABASE_URL to run
// them; without it every test skips.

var (
	testPool  *pgxpool.Pool
	testRepos portsrepo.RepositoryProvider
)

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	migration, err := os.ReadFile("../../../../migrations/000001_init.up.sql")
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to read migration: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(context.Background(), string(migration)); err != nil &&
		!strings.Contains(err.Error(), "already exists") {
		fmt.Fprintf(os.Stderr, "unable to apply migration: %v\n", err)
		os.Exit(1)
	}

	testPool = pool
	testRepos = pgsql.NewRepositoryProvider(pool)
	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE rate_triggers, conversions, ratings, escrows, orders, wallet_balances, users;`)
	require.NoError(t, err)
}

func createTestUser(t *testing.T, name string) string {
	t.Helper()
	userID := uuid.NewString()
	_, err := testPool.Exec(context.Background(),
		`INSERT INTO users (user_id, name, email, created_at, last_updated_at)
		 VALUES ($1, $2, $3, NOW(), NOW());`,
		userID, name, userID+"@example.com")
	require.NoError(t, err)
	return userID
}

func openOrder(ownerID string, amount, price int64, now time.Time) domain.Order {
	return domain.Order{
		OrderID:        uuid.NewString(),
		OwnerID:        ownerID,
		Side:           domain.Sell,
		BaseCurrency:   "USD",
		TargetCurrency: "EUR",
		Amount:         decimal.NewFromInt(amount),
		Price:          decimal.NewFromFloat(float64(price) / 100),
		Status:         domain.OrderOpen,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

func TestWalletCreditDebitArithmetic(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	userID := createTestUser(t, "alice")

	// First credit creates the row
	balance, err := testRepos.WalletRepo.CreditBalance(ctx, userID, "USD", decimal.NewFromInt(100), now)
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(100)))

	// Second credit accumulates on the same row
	balance, err = testRepos.WalletRepo.CreditBalance(ctx, userID, "USD", decimal.NewFromInt(50), now)
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(150)))

	err = testRepos.WalletRepo.DebitBalance(ctx, userID, "USD", decimal.NewFromInt(30), now)
	require.NoError(t, err)

	balance, err = testRepos.WalletRepo.FindBalance(ctx, userID, "USD")
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(120)))

	// Overdraft is rejected and leaves the balance untouched
	err = testRepos.WalletRepo.DebitBalance(ctx, userID, "USD", decimal.NewFromInt(200), now)
	require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	balance, err = testRepos.WalletRepo.FindBalance(ctx, userID, "USD")
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(120)))

	// Debiting a currency the user never held is ErrNotFound, not a zero row
	err = testRepos.WalletRepo.DebitBalance(ctx, userID, "JPY", decimal.NewFromInt(1), now)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestConcurrentDebits_NeverNegative(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	userID := createTestUser(t, "alice")

	_, err := testRepos.WalletRepo.CreditBalance(ctx, userID, "USD", decimal.NewFromInt(100), now)
	require.NoError(t, err)

	// Two debits of 60 against 100: the row lock admits exactly one
	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = testRepos.WalletRepo.DebitBalance(ctx, userID, "USD", decimal.NewFromInt(60), now)
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range results {
		if err != nil {
			require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
			failures++
		}
	}
	assert.Equal(t, 1, failures)

	balance, err := testRepos.WalletRepo.FindBalance(ctx, userID, "USD")
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(40)))
}

func TestAcceptThenRelease_Settlement(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	sellerID := createTestUser(t, "alice")
	buyerID := createTestUser(t, "bob")

	// alice offers 100 USD at 0.9 EUR/USD, bob holds 150 USD
	order := openOrder(sellerID, 100, 90, now)
	require.NoError(t, testRepos.OrderRepo.SaveOrder(ctx, order))
	_, err := testRepos.WalletRepo.CreditBalance(ctx, buyerID, "USD", decimal.NewFromInt(150), now)
	require.NoError(t, err)

	escrow, err := testRepos.OrderRepo.AcceptOrder(ctx, order.OrderID, buyerID, now)
	require.NoError(t, err)
	require.NotNil(t, escrow)
	assert.Equal(t, domain.EscrowPending, escrow.Status)
	assert.Equal(t, buyerID, escrow.BuyerID)
	assert.Equal(t, sellerID, escrow.SellerID)

	// The accept debited bob's base currency and completed the order
	balance, err := testRepos.WalletRepo.FindBalance(ctx, buyerID, "USD")
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(50)))

	stored, err := testRepos.OrderRepo.FindOrderByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, stored.Status)

	// Release pays bob amount*price = 90 EUR
	released, err := testRepos.EscrowRepo.ReleaseEscrow(ctx, escrow.EscrowID, sellerID, now)
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowReleased, released.Status)

	balance, err = testRepos.WalletRepo.FindBalance(ctx, buyerID, "EUR")
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(90)))

	// A second release is rejected and must not credit again
	_, err = testRepos.EscrowRepo.ReleaseEscrow(ctx, escrow.EscrowID, sellerID, now)
	require.ErrorIs(t, err, apperrors.ErrConflict)

	balance, err = testRepos.WalletRepo.FindBalance(ctx, buyerID, "EUR")
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(90)))
}

func TestAcceptOrder_InsufficientFundsRollsBack(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	sellerID := createTestUser(t, "alice")
	buyerID := createTestUser(t, "bob")

	order := openOrder(sellerID, 100, 90, now)
	require.NoError(t, testRepos.OrderRepo.SaveOrder(ctx, order))
	_, err := testRepos.WalletRepo.CreditBalance(ctx, buyerID, "USD", decimal.NewFromInt(10), now)
	require.NoError(t, err)

	escrow, err := testRepos.OrderRepo.AcceptOrder(ctx, order.OrderID, buyerID, now)
	require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Nil(t, escrow)

	// The whole transaction rolled back: order still OPEN, no escrow, funds intact
	stored, err := testRepos.OrderRepo.FindOrderByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderOpen, stored.Status)

	_, err = testRepos.EscrowRepo.FindEscrowByOrderID(ctx, order.OrderID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	balance, err := testRepos.WalletRepo.FindBalance(ctx, buyerID, "USD")
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(10)))
}

func TestAcceptOrder_ConcurrentAcceptsAdmitOne(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	sellerID := createTestUser(t, "alice")
	buyerIDs := []string{createTestUser(t, "bob"), createTestUser(t, "carol")}

	order := openOrder(sellerID, 100, 90, now)
	require.NoError(t, testRepos.OrderRepo.SaveOrder(ctx, order))
	for _, buyerID := range buyerIDs {
		_, err := testRepos.WalletRepo.CreditBalance(ctx, buyerID, "USD", decimal.NewFromInt(100), now)
		require.NoError(t, err)
	}

	escrows := make([]*domain.Escrow, 2)
	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, buyerID := range buyerIDs {
		wg.Add(1)
		go func(i int, buyerID string) {
			defer wg.Done()
			escrows[i], results[i] = testRepos.OrderRepo.AcceptOrder(ctx, order.OrderID, buyerID, now)
		}(i, buyerID)
	}
	wg.Wait()

	winners := 0
	for i := range results {
		if results[i] == nil {
			require.NotNil(t, escrows[i])
			winners++
			continue
		}
		// The loser observes the completed order
		require.ErrorIs(t, results[i], apperrors.ErrConflict)
	}
	require.Equal(t, 1, winners)

	var escrowCount int
	require.NoError(t, testPool.QueryRow(ctx,
		`SELECT COUNT(*) FROM escrows WHERE order_id = $1;`, order.OrderID).Scan(&escrowCount))
	assert.Equal(t, 1, escrowCount)

	// Only the winning buyer was debited
	for i, buyerID := range buyerIDs {
		balance, err := testRepos.WalletRepo.FindBalance(ctx, buyerID, "USD")
		require.NoError(t, err)
		if results[i] == nil {
			assert.True(t, balance.Balance.IsZero())
		} else {
			assert.True(t, balance.Balance.Equal(decimal.NewFromInt(100)))
		}
	}
}

func TestAcceptOrder_OwnOrderRejected(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	sellerID := createTestUser(t, "alice")

	order := openOrder(sellerID, 100, 90, now)
	require.NoError(t, testRepos.OrderRepo.SaveOrder(ctx, order))
	_, err := testRepos.WalletRepo.CreditBalance(ctx, sellerID, "USD", decimal.NewFromInt(100), now)
	require.NoError(t, err)

	escrow, err := testRepos.OrderRepo.AcceptOrder(ctx, order.OrderID, sellerID, now)
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, escrow)

	stored, err := testRepos.OrderRepo.FindOrderByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderOpen, stored.Status)
}
