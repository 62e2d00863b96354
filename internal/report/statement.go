package report

import (
	"fmt"
	"time"

	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DescriptionLength is the number of characters of a description
// shown in a statement.
const DescriptionLength = 25

// Row is one transaction in a statement.
type Row struct {
	Date        types.Date
	Category    string
	Description string
	Type        models.TransactionType
	Amount      decimal.Decimal
}

// Statement is the list of transactions of a user in a period with
// their totals.
type Statement struct {
	Locale    Locale
	Username  string
	Period    types.Period
	Generated time.Time
	Rows      []Row
	Income    decimal.Decimal
	Expenses  decimal.Decimal
}

// NewStatement creates the statement for the transactions.
//
// The transactions are expected to be filtered already, all of them
// are part of the statement and its totals.
func NewStatement(locale Locale, username string, period types.Period, transactions []models.Transaction, generated time.Time) Statement {
	s := Statement{
		Locale:    locale,
		Username:  username,
		Period:    period,
		Generated: generated,
		Rows:      make([]Row, 0, len(transactions)),
		Income:    decimal.Zero,
		Expenses:  decimal.Zero,
	}

	for _, t := range transactions {
		category := t.CategoryName()
		if category == "" {
			category = "-"
		}

		s.Rows = append(s.Rows, Row{
			Date:        t.Date,
			Category:    category,
			Description: truncate(t.Description, DescriptionLength),
			Type:        t.Type,
			Amount:      t.Amount,
		})

		if t.Type == models.TransactionTypeIncome {
			s.Income = s.Income.Add(t.Amount)
		} else {
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}

	return s
}

// Balance is the total income minus the total expenses.
func (s Statement) Balance() decimal.Decimal {
	return s.Income.Sub(s.Expenses)
}

// PeriodText is the period as shown in the statement.
func (s Statement) PeriodText() string {
	if s.Period.IsZero() {
		return s.Locale.AllPeriods
	}

	return s.Period.String()
}

// Filename returns the name of the statement file with the extension.
func (s Statement) Filename(extension string) string {
	suffix := s.Locale.AllSuffix
	if !s.Period.IsZero() {
		suffix = fmt.Sprintf("%d-%d", int(s.Period.Month), s.Period.Year)
	}

	return fmt.Sprintf("%s_%s.%s", s.Locale.FilePrefix, suffix, extension)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
