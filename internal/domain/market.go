package domain

import "github.com/shopspring/decimal"

// Market is the instrument summary used across the catalogue: embedded
// in position responses, in node-scoped market navigation, and produced
// by flattening the instrument/snapshot blocks of /markets responses.
// Bid, Offer, High and Low are nil while the market is closed or the
// snapshot carries no quote.
type Market struct {
	Epic                     string
	InstrumentName           string
	InstrumentType           string
	Expiry                   string
	MarketStatus             string
	LotSize                  decimal.Decimal
	Bid                      *decimal.Decimal
	Offer                    *decimal.Decimal
	High                     *decimal.Decimal
	Low                      *decimal.Decimal
	NetChange                decimal.Decimal
	PercentageChange         decimal.Decimal
	UpdateTime               string
	DelayTime                int
	ScalingFactor            decimal.Decimal
	StreamingPricesAvailable bool
}
