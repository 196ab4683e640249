package domain

import "github.com/shopspring/decimal"

// ActivityAction is one dealing action recorded inside an activity
// detail block.
type ActivityAction struct {
	ActionType     string
	AffectedDealID string
}

// ActivityDetail is the optional nested block of an activity. The
// upstream API omits it for many activity types, so Activity carries it
// as a pointer: nil means the key was absent, never a zero value.
type ActivityDetail struct {
	DealReference        string
	MarketName           string
	Currency             string
	Direction            string
	Size                 decimal.Decimal
	Level                decimal.Decimal
	GoodTillDate         string
	StopLevel            *decimal.Decimal
	StopDistance         *decimal.Decimal
	LimitLevel           *decimal.Decimal
	LimitDistance        *decimal.Decimal
	TrailingStep         *decimal.Decimal
	TrailingStopDistance *decimal.Decimal
	GuaranteedStop       bool
	Actions              []ActivityAction
}

// Activity is one entry of the account activity history.
type Activity struct {
	Date        string
	Epic        string
	DealID      string
	Period      string
	Type        string
	Status      string
	Channel     string
	Description string
	Details     *ActivityDetail
}

// ActivityPaging is the paging block of the v3 activity endpoint:
// a next-page path plus the page size. Next is nil on the last page.
type ActivityPaging struct {
	Next *string
	Size int
}

// ActivityPage is one page of activity history.
type ActivityPage struct {
	Activities []Activity
	Paging     ActivityPaging
}
