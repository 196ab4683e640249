package domain

import "github.com/shopspring/decimal"

// AccountBalance is the balance block of a single account on /accounts.
type AccountBalance struct {
	Balance    decimal.Decimal
	Deposit    decimal.Decimal
	ProfitLoss decimal.Decimal
	Available  decimal.Decimal
}

// Account is one entry of the /accounts listing.
type Account struct {
	AccountID       string
	AccountName     string
	AccountAlias    string // optional, empty when not set upstream
	AccountType     string
	Status          string
	Currency        string
	Balance         AccountBalance
	Preferred       bool
	CanTransferFrom bool
	CanTransferTo   bool
}

// AccountPreferences holds the per-account settings exposed by
// /accounts/preferences.
type AccountPreferences struct {
	TrailingStopsEnabled bool
}
