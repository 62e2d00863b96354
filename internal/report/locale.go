// Package report builds account statements and renders them as PDF
// documents or spreadsheets.
package report

import (
	"fmt"

	"github.com/financeflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale holds all texts and formats of a statement.
type Locale struct {
	Tag      language.Tag
	Currency currency.Unit

	Title          string
	UserLabel      string
	PeriodLabel    string
	GeneratedLabel string
	AllPeriods     string
	Headers        [5]string
	Income         string
	Expense        string
	TotalIncome    string
	TotalExpenses  string
	Balance        string
	PageLabel      string

	DateFormat      string
	TimestampFormat string
	FilePrefix      string
	AllSuffix       string

	symbol string
}

var (
	Portuguese = Locale{
		Tag:             language.BrazilianPortuguese,
		Title:           "FinanceFlow - Extrato Financeiro",
		UserLabel:       "Usuário",
		PeriodLabel:     "Período",
		GeneratedLabel:  "Gerado em",
		AllPeriods:      "Todas as Transações",
		Headers:         [5]string{"Data", "Categoria", "Descrição", "Tipo", "Valor"},
		Income:          "Entrada",
		Expense:         "Saída",
		TotalIncome:     "TOTAL ENTRADAS",
		TotalExpenses:   "TOTAL SAÍDAS",
		Balance:         "SALDO FINAL",
		PageLabel:       "Página",
		DateFormat:      "02/01/2006",
		TimestampFormat: "02/01/2006 15:04",
		FilePrefix:      "extrato",
		AllSuffix:       "todas",
	}

	English = Locale{
		Tag:             language.AmericanEnglish,
		Title:           "FinanceFlow - Financial Statement",
		UserLabel:       "User",
		PeriodLabel:     "Period",
		GeneratedLabel:  "Generated at",
		AllPeriods:      "All Transactions",
		Headers:         [5]string{"Date", "Category", "Description", "Type", "Amount"},
		Income:          "Income",
		Expense:         "Expense",
		TotalIncome:     "TOTAL INCOME",
		TotalExpenses:   "TOTAL EXPENSES",
		Balance:         "NET BALANCE",
		PageLabel:       "Page",
		DateFormat:      "01/02/2006",
		TimestampFormat: "01/02/2006 03:04 PM",
		FilePrefix:      "statement",
		AllSuffix:       "all",
	}

	locales = []*Locale{&Portuguese, &English}
	matcher language.Matcher
)

func init() {
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		l.Currency, _ = currency.FromTag(l.Tag)
		l.symbol = message.NewPrinter(l.Tag).Sprint(currency.NarrowSymbol(l.Currency))
		l.Headers[4] = fmt.Sprintf("%s (%s)", l.Headers[4], l.symbol)
		tags = append(tags, l.Tag)
	}

	// The first tag is the fallback for unsupported languages
	matcher = language.NewMatcher(tags)
}

// LocaleFor returns the locale for a language parameter such as "pt"
// or "en". Empty and unsupported values return Portuguese.
func LocaleFor(lang string) Locale {
	tag, err := language.Parse(lang)
	if err != nil {
		return Portuguese
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Portuguese
	}

	return *locales[index]
}

// Type returns the label for a transaction type.
func (l Locale) Type(t models.TransactionType) string {
	if t == models.TransactionTypeIncome {
		return l.Income
	}

	return l.Expense
}

// Symbol returns the narrow symbol of the locale's currency.
func (l Locale) Symbol() string {
	return l.symbol
}

// Amount formats an amount with two decimals and the currency symbol.
func (l Locale) Amount(d decimal.Decimal) string {
	return fmt.Sprintf("%s %s", l.symbol, d.StringFixed(2))
}
