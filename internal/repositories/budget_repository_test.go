package repositories

import (
	"context"
	"testing"

	"finance-alerts/internal/database"
	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestBudgetRepository(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

type BudgetRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   BudgetRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *BudgetRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BudgetRepositorySuite) TestCreate_Validation() {
	err := s.repo.Create(s.ctx, &models.Budget{UserID: s.userID, AmountLimit: 100})
	s.ErrorIs(err, models.ErrBudgetCategoryRequired)

	err = s.repo.Create(s.ctx, &models.Budget{UserID: s.userID, CategoryID: uuid.New(), AmountLimit: -1})
	s.ErrorIs(err, models.ErrInvalidBudgetLimit)
}

func (s *BudgetRepositorySuite) TestGetByID() {
	category := database.CreateTestCategory(s.T(), s.db, s.userID, "Продукты")
	budget := database.CreateTestBudget(s.T(), s.db, s.userID, category, 1000000)

	found, err := s.repo.GetByID(s.ctx, budget.ID)
	s.Require().NoError(err)
	s.Equal(int64(1000000), found.AmountLimit)
	s.Require().NotNil(found.Category)
	s.Equal("Продукты", found.Category.Name)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetRepositorySuite) TestGetByUserID_ReturnsRecordsWithCategoryNames() {
	groceries := database.CreateTestCategory(s.T(), s.db, s.userID, "Продукты")
	transport := database.CreateTestCategory(s.T(), s.db, s.userID, "Транспорт")
	database.CreateTestBudget(s.T(), s.db, s.userID, groceries, 1000000)

	unnamed := &models.Budget{UserID: s.userID, CategoryID: transport.ID, AmountLimit: 500000}
	s.Require().NoError(s.repo.Create(s.ctx, unnamed))

	other := database.CreateTestCategory(s.T(), s.db, uuid.New(), "Чужое")
	database.CreateTestBudget(s.T(), s.db, other.UserID, other, 1)

	records, err := s.repo.GetByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(records, 2)

	byCategory := map[uuid.UUID]models.BudgetRecord{}
	for _, record := range records {
		byCategory[record.CategoryID] = record
	}
	s.Equal("Продукты", byCategory[groceries.ID].CategoryName)
	s.Equal("Транспорт", byCategory[transport.ID].Name)
	s.Equal(int64(500000), byCategory[transport.ID].AmountLimit)
}
