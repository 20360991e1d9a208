package services

import (
	"slices"
	"time"

	"finance-alerts/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

const (
	demoSalaryAmountMin   = 6_000_000
	demoSalaryAmountMax   = 9_000_000
	demoSalaryHour        = 9
	demoBillHour          = 14
	demoPaymentHour       = 12
	demoDayStartHour      = 8
	demoDayEndHour        = 22
	demoMaxPurchasesDaily = 3
	demoSpikeFactor       = 4
	demoSpikePurchases    = 3
	demoBudgetHeadroom    = 1.1
	demoBudgetStep        = 100_000
	maxDemoHistoryMonths  = 12
	billsCategoryName     = "Коммунальные услуги"
)

var demoSalaryDays = []int{5, 20}

type demoCategory struct {
	name     string
	min, max int
}

// Amounts are kopecks.
var demoSpendingCategories = []demoCategory{
	{name: "Продукты", min: 30_000, max: 350_000},
	{name: "Кафе и рестораны", min: 25_000, max: 250_000},
	{name: "Транспорт", min: 6_000, max: 90_000},
	{name: "Развлечения", min: 40_000, max: 300_000},
	{name: "Здоровье", min: 50_000, max: 400_000},
}

var demoBills = []demoCategory{
	{name: "Электроэнергия", min: 150_000, max: 450_000},
	{name: "Водоснабжение", min: 80_000, max: 200_000},
	{name: "Интернет и ТВ", min: 60_000, max: 120_000},
}

var demoScheduledPayments = []struct {
	name       string
	min, max   int
	offsetDays int
	frequency  string
}{
	{name: "Аренда квартиры", min: 3_000_000, max: 4_500_000, offsetDays: 0, frequency: models.PaymentFrequencyMonthly},
	{name: "Мобильная связь", min: 50_000, max: 90_000, offsetDays: 3, frequency: models.PaymentFrequencyMonthly},
	{name: "Кредит за автомобиль", min: 1_500_000, max: 2_500_000, offsetDays: -1, frequency: models.PaymentFrequencyMonthly},
	{name: "Страховка ОСАГО", min: 800_000, max: 1_200_000, offsetDays: 6, frequency: models.PaymentFrequencyYearly},
}

type demoHistoryGenerator struct {
	faker *gofakeit.Faker
	clock Clock
}

// NewDemoHistoryGenerator creates a generator. A seed of 0 picks a random one.
func NewDemoHistoryGenerator(seed uint64, clock Clock) DemoHistoryGeneratorInterface {
	return &demoHistoryGenerator{
		faker: gofakeit.New(seed),
		clock: clockOrNow(clock),
	}
}

func (g *demoHistoryGenerator) Generate(userID uuid.UUID, opts models.DemoHistoryOptions) *models.DemoHistory {
	now := g.clock().UTC()
	months := min(max(opts.Months, 1), maxDemoHistoryMonths)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := monthStart.AddDate(0, -months, 0)
	end := now.AddDate(0, 0, -max(opts.QuietDays, 0))

	history := &models.DemoHistory{UserID: userID}

	spending := make([]models.Category, 0, len(demoSpendingCategories))
	for _, category := range demoSpendingCategories {
		spending = append(spending, g.category(userID, category.name, now))
	}
	bills := g.category(userID, billsCategoryName, now)
	history.Categories = append(slices.Clone(spending), bills)

	history.Transactions = append(history.Transactions, g.salaries(userID, start, end)...)
	history.Transactions = append(history.Transactions, g.billPayments(userID, bills, start, end)...)
	history.Transactions = append(history.Transactions, g.dailyPurchases(userID, spending, start, end)...)
	if opts.Spike {
		history.Transactions = append(history.Transactions,
			g.spike(userID, spending[0], history.Transactions, monthStart, end, months)...)
	}
	slices.SortFunc(history.Transactions, func(a, b models.Transaction) int {
		return a.OccurredAt.Compare(b.OccurredAt)
	})

	history.Budgets = g.budgets(userID, spending, history.Transactions, monthStart, months)
	history.Payments = g.payments(userID, now)

	return history
}

func (g *demoHistoryGenerator) category(userID uuid.UUID, name string, now time.Time) models.Category {
	return models.Category{ID: uuid.New(), UserID: userID, Name: name, CreatedAt: now, UpdatedAt: now}
}

// salaries pays twice a month, the same amount every time
func (g *demoHistoryGenerator) salaries(userID uuid.UUID, start, end time.Time) []models.Transaction {
	amount := roundToRubles(g.faker.IntRange(demoSalaryAmountMin, demoSalaryAmountMax))

	var transactions []models.Transaction
	for month := start; !month.After(end); month = month.AddDate(0, 1, 0) {
		for _, day := range demoSalaryDays {
			at := time.Date(month.Year(), month.Month(), day, demoSalaryHour, 0, 0, 0, time.UTC)
			if at.Before(start) || at.After(end) {
				continue
			}
			transactions = append(transactions, g.transaction(userID, nil, models.TransactionTypeIncome, amount, "Зарплата", at))
		}
	}
	return transactions
}

func (g *demoHistoryGenerator) billPayments(userID uuid.UUID, category models.Category, start, end time.Time) []models.Transaction {
	var transactions []models.Transaction
	for month := start; !month.After(end); month = month.AddDate(0, 1, 0) {
		for _, bill := range demoBills {
			day := g.faker.IntRange(1, 28)
			at := time.Date(month.Year(), month.Month(), day, demoBillHour, 0, 0, 0, time.UTC)
			if at.After(end) {
				continue
			}
			amount := roundToRubles(g.faker.IntRange(bill.min, bill.max))
			transactions = append(transactions, g.transaction(userID, &category, models.TransactionTypeExpense, amount, bill.name, at))
		}
	}
	return transactions
}

func (g *demoHistoryGenerator) dailyPurchases(userID uuid.UUID, categories []models.Category, start, end time.Time) []models.Transaction {
	var transactions []models.Transaction
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		for range g.faker.IntRange(0, demoMaxPurchasesDaily) {
			index := g.faker.IntRange(0, len(categories)-1)
			at := g.timeOfDay(day)
			if at.After(end) {
				continue
			}
			amount := roundToRubles(g.faker.IntRange(demoSpendingCategories[index].min, demoSpendingCategories[index].max))
			transactions = append(transactions, g.transaction(userID, &categories[index], models.TransactionTypeExpense, amount, g.faker.Company(), at))
		}
	}
	return transactions
}

// spike tops the category's current-month spend up to demoSpikeFactor times its monthly average
func (g *demoHistoryGenerator) spike(userID uuid.UUID, category models.Category, existing []models.Transaction, monthStart, end time.Time, months int) []models.Transaction {
	if end.Before(monthStart) {
		return nil
	}

	var historical, current int64
	for _, tx := range existing {
		if tx.CategoryID == nil || *tx.CategoryID != category.ID {
			continue
		}
		if tx.OccurredAt.Before(monthStart) {
			historical += tx.Amount
		} else {
			current += tx.Amount
		}
	}
	missing := demoSpikeFactor*historical/int64(months) - current
	if missing <= 0 {
		return nil
	}

	transactions := make([]models.Transaction, 0, demoSpikePurchases)
	amount := missing/demoSpikePurchases + 1
	span := end.Sub(monthStart)
	for i := range demoSpikePurchases {
		at := monthStart.Add(span * time.Duration(i+1) / (demoSpikePurchases + 1))
		transactions = append(transactions, g.transaction(userID, &category, models.TransactionTypeExpense, amount, g.faker.Company(), at))
	}
	return transactions
}

// budgets sets each spending category's limit slightly above its monthly average
func (g *demoHistoryGenerator) budgets(userID uuid.UUID, categories []models.Category, transactions []models.Transaction, monthStart time.Time, months int) []models.Budget {
	totals := make(map[uuid.UUID]int64, len(categories))
	for _, tx := range transactions {
		if tx.CategoryID != nil && tx.OccurredAt.Before(monthStart) {
			totals[*tx.CategoryID] += tx.Amount
		}
	}

	budgets := make([]models.Budget, 0, len(categories))
	for _, category := range categories {
		average := float64(totals[category.ID]) / float64(months)
		limit := int64(average*demoBudgetHeadroom/demoBudgetStep+1) * demoBudgetStep
		budgets = append(budgets, models.Budget{
			ID:          uuid.New(),
			UserID:      userID,
			CategoryID:  category.ID,
			Name:        category.Name,
			AmountLimit: limit,
		})
	}
	return budgets
}

func (g *demoHistoryGenerator) payments(userID uuid.UUID, now time.Time) []models.ScheduledPayment {
	today := time.Date(now.Year(), now.Month(), now.Day(), demoPaymentHour, 0, 0, 0, time.UTC)
	payments := make([]models.ScheduledPayment, 0, len(demoScheduledPayments))
	for _, payment := range demoScheduledPayments {
		payments = append(payments, models.ScheduledPayment{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      payment.name,
			Amount:    roundToRubles(g.faker.IntRange(payment.min, payment.max)),
			NextDate:  today.AddDate(0, 0, payment.offsetDays),
			Frequency: payment.frequency,
		})
	}
	return payments
}

func (g *demoHistoryGenerator) timeOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		g.faker.IntRange(demoDayStartHour, demoDayEndHour-1), g.faker.IntRange(0, 59), g.faker.IntRange(0, 59), 0, time.UTC)
}

func (g *demoHistoryGenerator) transaction(userID uuid.UUID, category *models.Category, txType string, amount int64, description string, at time.Time) models.Transaction {
	tx := models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: description,
		OccurredAt:  at,
	}
	if category != nil {
		id := category.ID
		tx.CategoryID = &id
	}
	return tx
}

func roundToRubles(kopecks int) int64 {
	return int64(kopecks - kopecks%100)
}
