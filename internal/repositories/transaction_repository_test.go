package repositories

import (
	"context"
	"testing"
	"time"

	"finance-alerts/internal/database"
	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   TransactionRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
	now    time.Time
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) TestCreate_RejectsInvalidType() {
	err := s.repo.Create(s.ctx, &models.Transaction{
		UserID: s.userID,
		Amount: 100,
		Type:   "transfer",
	})
	s.ErrorIs(err, models.ErrInvalidTransactionType)
}

func (s *TransactionRepositorySuite) TestGetExpensesInRange_FiltersAndOrders() {
	groceries := database.CreateTestCategory(s.T(), s.db, s.userID, "Продукты")

	database.CreateTestTransaction(s.T(), s.db, s.userID, groceries, models.TransactionTypeExpense, 3000, s.now.AddDate(0, 0, -1))
	database.CreateTestTransaction(s.T(), s.db, s.userID, nil, models.TransactionTypeExpense, -2000, s.now.AddDate(0, 0, -3))
	database.CreateTestTransaction(s.T(), s.db, s.userID, groceries, models.TransactionTypeIncome, 9000, s.now.AddDate(0, 0, -2))
	database.CreateTestTransaction(s.T(), s.db, s.userID, groceries, models.TransactionTypeExpense, 1000, s.now.AddDate(0, -7, 0))
	database.CreateTestTransaction(s.T(), s.db, uuid.New(), nil, models.TransactionTypeExpense, 5000, s.now.AddDate(0, 0, -1))

	records, err := s.repo.GetExpensesInRange(s.ctx, s.userID, s.now.AddDate(0, -6, 0), s.now)
	s.Require().NoError(err)
	s.Require().Len(records, 2)

	s.Equal(int64(-2000), records[0].Amount)
	s.Equal(int64(2000), records[0].Magnitude())
	s.Equal(uuid.Nil, records[0].CategoryID)
	s.Equal(models.UncategorizedName, records[0].CategoryName)

	s.Equal(int64(3000), records[1].Amount)
	s.Equal(groceries.ID, records[1].CategoryID)
	s.Equal("Продукты", records[1].CategoryName)
}

func (s *TransactionRepositorySuite) TestGetInRange_NewestFirstAllTypes() {
	database.CreateTestTransaction(s.T(), s.db, s.userID, nil, models.TransactionTypeExpense, 100, s.now.AddDate(0, 0, -5))
	database.CreateTestTransaction(s.T(), s.db, s.userID, nil, models.TransactionTypeIncome, 200, s.now.AddDate(0, 0, -1))
	database.CreateTestTransaction(s.T(), s.db, s.userID, nil, models.TransactionTypeExpense, 300, s.now.AddDate(0, 0, -40))

	records, err := s.repo.GetInRange(s.ctx, s.userID, s.now.AddDate(0, 0, -30), s.now)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(int64(200), records[0].Amount)
	s.Equal(int64(100), records[1].Amount)
}

func (s *TransactionRepositorySuite) TestGetLatest() {
	_, err := s.repo.GetLatest(s.ctx, s.userID)
	s.ErrorIs(err, ErrTransactionNotFound)

	database.CreateTestTransaction(s.T(), s.db, s.userID, nil, models.TransactionTypeExpense, 100, s.now.AddDate(0, 0, -5))
	latest := database.CreateTestTransaction(s.T(), s.db, s.userID, nil, models.TransactionTypeIncome, 200, s.now.AddDate(0, 0, -2))

	record, err := s.repo.GetLatest(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(latest.ID, record.ID)
	s.True(record.OccurredAt.Equal(s.now.AddDate(0, 0, -2)))
}

func (s *TransactionRepositorySuite) TestCountInRange() {
	for i := 0; i < 4; i++ {
		database.CreateTestTransaction(s.T(), s.db, s.userID, nil, models.TransactionTypeExpense, 100, time.Date(2026, 9, 5+i, 10, 0, 0, 0, time.UTC))
	}
	database.CreateTestTransaction(s.T(), s.db, s.userID, nil, models.TransactionTypeExpense, 100, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	count, err := s.repo.CountInRange(s.ctx, s.userID,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC))
	s.NoError(err)
	s.Equal(int64(4), count)
}
