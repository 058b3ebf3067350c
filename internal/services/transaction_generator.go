package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"bankrules/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MerchantInfo describes one merchant the generator can draw from
type MerchantInfo struct {
	Name     string
	Category string
}

type transactionGenerator struct {
	merchantPool []MerchantInfo
	faker        *gofakeit.Faker
	rng          *rand.Rand
}

// NewTransactionGenerator creates a generator for realistic development and
// demo transaction data
func NewTransactionGenerator() TransactionGeneratorInterface {
	seed := time.Now().UnixNano()
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		faker:        gofakeit.New(seed),
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func initializeMerchantPool() []MerchantInfo {
	return []MerchantInfo{
		// Groceries
		{"ALBERT HEIJN 1374", models.CategoryGroceries},
		{"LIDL NL", models.CategoryGroceries},
		{"JUMBO UTRECHT", models.CategoryGroceries},
		{"ALDI MARKT", models.CategoryGroceries},
		{"TESCO STORES", models.CategoryGroceries},
		{"CARREFOUR CITY", models.CategoryGroceries},
		{"REWE MARKT", models.CategoryGroceries},
		{"EDEKA CENTER", models.CategoryGroceries},

		// Restaurants
		{"MCDONALDS AMSTERDAM", models.CategoryRestaurants},
		{"STARBUCKS COFFEE", models.CategoryRestaurants},
		{"BURGER KING", models.CategoryRestaurants},
		{"THUISBEZORGD.NL", models.CategoryRestaurants},
		{"DELIVEROO", models.CategoryRestaurants},
		{"UBER EATS", models.CategoryRestaurants},
		{"DOMINO'S PIZZA", models.CategoryRestaurants},
		{"SUBWAY CENTRAAL", models.CategoryRestaurants},

		// Transport
		{"NS GROEP IZ NS REIZIGERS", models.CategoryTransport},
		{"SHELL STATION", models.CategoryTransport},
		{"UBER BV", models.CategoryTransport},
		{"BOLT OPERATIONS", models.CategoryTransport},
		{"ESSO TANKSTATION", models.CategoryTransport},
		{"GVB AUTOMAAT", models.CategoryTransport},
		{"DEUTSCHE BAHN", models.CategoryTransport},

		// Shopping
		{"AMAZON EU SARL", models.CategoryShopping},
		{"BOL.COM", models.CategoryShopping},
		{"ZALANDO SE", models.CategoryShopping},
		{"MEDIAMARKT", models.CategoryShopping},
		{"IKEA DELFT", models.CategoryShopping},
		{"H&M HENNES", models.CategoryShopping},
		{"COOLBLUE BV", models.CategoryShopping},
		{"ACTION NEDERLAND", models.CategoryShopping},

		// Entertainment
		{"NETFLIX.COM", models.CategoryEntertainment},
		{"SPOTIFY AB", models.CategoryEntertainment},
		{"DISNEY PLUS", models.CategoryEntertainment},
		{"STEAM PURCHASE", models.CategoryEntertainment},
		{"PATHE THEATRES", models.CategoryEntertainment},
		{"HBO MAX", models.CategoryEntertainment},

		// Utilities
		{"VATTENFALL", models.CategoryUtilities},
		{"ENECO SERVICES", models.CategoryUtilities},
		{"ZIGGO BV", models.CategoryUtilities},
		{"KPN BV", models.CategoryUtilities},
		{"VODAFONE LIBERTEL", models.CategoryUtilities},
		{"WATERNET", models.CategoryUtilities},

		// Travel
		{"KLM ROYAL DUTCH AIRLINES", models.CategoryTravel},
		{"RYANAIR", models.CategoryTravel},
		{"BOOKING.COM", models.CategoryTravel},
		{"AIRBNB PAYMENTS", models.CategoryTravel},
		{"NH HOTELES", models.CategoryTravel},

		// Health
		{"APOTHEEK CENTRUM", models.CategoryHealth},
		{"KRUIDVAT", models.CategoryHealth},
		{"ETOS BV", models.CategoryHealth},
		{"ZILVEREN KRUIS", models.CategoryHealth},
		{"BASIC FIT NEDERLAND", models.CategoryHealth},
	}
}

func (g *transactionGenerator) GetMerchantPool() []MerchantInfo {
	return g.merchantPool
}

func (g *transactionGenerator) SelectRandomMerchant() MerchantInfo {
	return g.merchantPool[g.rng.Intn(len(g.merchantPool))]
}

// GenerateBookingDate returns a random day in [startDate, endDate] formatted
// as an ISO-8601 day string
func (g *transactionGenerator) GenerateBookingDate(startDate, endDate time.Time) string {
	days := int(endDate.Sub(startDate).Hours() / 24)
	if days <= 0 {
		return startDate.Format("2006-01-02")
	}
	return startDate.AddDate(0, 0, g.rng.Intn(days+1)).Format("2006-01-02")
}

// GenerateTransactions produces count transactions for the user spread across
// the date range. Roughly one in twelve is an incoming salary payment, the
// rest are merchant debits. Categories are left empty so classification can
// be exercised against the generated data.
func (g *transactionGenerator) GenerateTransactions(
	userID uuid.UUID,
	accountID string,
	startDate, endDate time.Time,
	count int,
) []*models.Transaction {
	transactions := make([]*models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		var txn *models.Transaction
		if i%12 == 11 {
			txn = g.generateSalaryTransaction(userID, accountID, startDate, endDate)
		} else {
			txn = g.generateMerchantTransaction(userID, accountID, startDate, endDate)
		}
		transactions = append(transactions, txn)
	}

	return transactions
}

func (g *transactionGenerator) generateMerchantTransaction(
	userID uuid.UUID,
	accountID string,
	startDate, endDate time.Time,
) *models.Transaction {
	merchant := g.SelectRandomMerchant()
	bookingDate := g.GenerateBookingDate(startDate, endDate)
	amount := decimal.NewFromFloat(g.faker.Float64Range(2.50, 350.00)).Round(2).Neg()

	txn := &models.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AccountID:    accountID,
		Counterparty: merchant.Name,
		Description:  g.generateDescription(merchant.Name, bookingDate),
		Amount:       amount,
		Currency:     "EUR",
		BookingDate:  bookingDate,
	}
	txn.Reference = models.GenerateTransactionReference(accountID, bookingDate, txn.Amount.String(), txn.Description)
	return txn
}

func (g *transactionGenerator) generateSalaryTransaction(
	userID uuid.UUID,
	accountID string,
	startDate, endDate time.Time,
) *models.Transaction {
	bookingDate := g.GenerateBookingDate(startDate, endDate)
	amount := decimal.NewFromFloat(g.faker.Float64Range(2200.00, 5200.00)).Round(2)
	employer := strings.ToUpper(g.faker.Company())

	txn := &models.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AccountID:    accountID,
		Counterparty: employer,
		Description:  fmt.Sprintf("SALARY %s %s", employer, bookingDate[:7]),
		Amount:       amount,
		Currency:     "EUR",
		BookingDate:  bookingDate,
	}
	txn.Reference = models.GenerateTransactionReference(accountID, bookingDate, txn.Amount.String(), txn.Description)
	return txn
}

func (g *transactionGenerator) generateDescription(merchantName, bookingDate string) string {
	forms := []string{
		"%s %s PAS873",
		"BEA %s %s",
		"SEPA IDEAL %s REF %s",
		"%s CARD PAYMENT %s",
	}
	form := forms[g.rng.Intn(len(forms))]
	return fmt.Sprintf(form, merchantName, bookingDate)
}
