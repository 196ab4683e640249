package domain

import "github.com/shopspring/decimal"

// AccountInfo is the balance block of the current account as returned
// by login.
type AccountInfo struct {
	Balance    decimal.Decimal
	Deposit    decimal.Decimal
	ProfitLoss decimal.Decimal
	Available  decimal.Decimal
}

// AccountSummary is the short account form embedded in the login
// response (the full form lives on /accounts, see Account).
type AccountSummary struct {
	AccountID   string
	AccountName string
	AccountType string
	Preferred   bool
}

// SessionState is the complete per-session value owned by the session
// worker. Credentials (Demo, Identifier, Password, APIKey) are fixed at
// construction; everything else is replaced wholesale by a successful
// login and never mutated by any other operation.
type SessionState struct {
	Demo       bool
	Identifier string
	Password   string
	APIKey     string

	CST           string
	SecurityToken string

	AccountType           string
	AccountInfo           AccountInfo
	CurrencyISOCode       string
	CurrencySymbol        string
	CurrentAccountID      string
	LightstreamerEndpoint string
	ClientID              string
	TimezoneOffset        int
	HasActiveDemoAccounts bool
	HasActiveLiveAccounts bool
	TrailingStopsEnabled  bool
	ReroutingEnvironment  string
	DealingEnabled        bool
	Accounts              []AccountSummary
}

// Authenticated reports whether login has issued the token pair. The
// two tokens are always set together.
func (s *SessionState) Authenticated() bool {
	return s.CST != "" && s.SecurityToken != ""
}

// Clone returns a deep copy safe to hand outside the session worker.
func (s *SessionState) Clone() SessionState {
	c := *s
	if s.Accounts != nil {
		c.Accounts = make([]AccountSummary, len(s.Accounts))
		copy(c.Accounts, s.Accounts)
	}
	return c
}
