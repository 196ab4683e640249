package domain

import "github.com/shopspring/decimal"

// Resolution is the time granularity of a historical price series,
// using the upstream wire spellings.
type Resolution string

const (
	ResolutionSecond   Resolution = "SECOND"
	ResolutionMinute   Resolution = "MINUTE"
	ResolutionMinute2  Resolution = "MINUTE_2"
	ResolutionMinute3  Resolution = "MINUTE_3"
	ResolutionMinute5  Resolution = "MINUTE_5"
	ResolutionMinute10 Resolution = "MINUTE_10"
	ResolutionMinute15 Resolution = "MINUTE_15"
	ResolutionMinute30 Resolution = "MINUTE_30"
	ResolutionHour     Resolution = "HOUR"
	ResolutionHour2    Resolution = "HOUR_2"
	ResolutionHour3    Resolution = "HOUR_3"
	ResolutionHour4    Resolution = "HOUR_4"
	ResolutionDay      Resolution = "DAY"
	ResolutionWeek     Resolution = "WEEK"
	ResolutionMonth    Resolution = "MONTH"
)

// Valid reports whether r is one of the upstream resolutions.
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionSecond, ResolutionMinute, ResolutionMinute2,
		ResolutionMinute3, ResolutionMinute5, ResolutionMinute10,
		ResolutionMinute15, ResolutionMinute30, ResolutionHour,
		ResolutionHour2, ResolutionHour3, ResolutionHour4,
		ResolutionDay, ResolutionWeek, ResolutionMonth:
		return true
	}
	return false
}

// PriceQuote is one side-pair of a candle edge. Bid/Ask are nil when
// the venue published no quote for that edge; LastTraded is nil for
// instruments without traded volume.
type PriceQuote struct {
	Bid        *decimal.Decimal
	Ask        *decimal.Decimal
	LastTraded *decimal.Decimal
}

// PricePoint is one candle of a historical price series.
type PricePoint struct {
	SnapshotTime     string
	OpenPrice        PriceQuote
	ClosePrice       PriceQuote
	HighPrice        PriceQuote
	LowPrice         PriceQuote
	LastTradedVolume *decimal.Decimal
}

// PriceList is a decoded price series. Metadata is nil for the
// responses that carry none (the count and range variants); the
// upstream allowance block is intentionally not part of this record.
type PriceList struct {
	InstrumentType string
	Prices         []PricePoint
	Metadata       *PageMetadata
}
