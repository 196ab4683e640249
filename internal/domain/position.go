package domain

import "github.com/shopspring/decimal"

// Position is the dealing side of an open position.
type Position struct {
	DealID               string
	DealReference        string
	Direction            string
	Size                 decimal.Decimal
	Level                decimal.Decimal
	Currency             string
	ContractSize         decimal.Decimal
	ControlledRisk       bool
	CreatedDate          string
	StopLevel            *decimal.Decimal
	LimitLevel           *decimal.Decimal
	TrailingStep         *decimal.Decimal
	TrailingStopDistance *decimal.Decimal
}

// OpenPosition pairs one Position with the Market it is held on. The
// upstream response always carries exactly one of each.
type OpenPosition struct {
	Position Position
	Market   Market
}
