package request

// Endpoint identifies one upstream REST operation.
type Endpoint int

const (
	Login Endpoint = iota
	Accounts
	AccountPreferences
	ActivityFiltered
	ActivityRange
	ActivityPeriod
	Transactions
	Positions
	PositionByDealID
	MarketNavigation
	MarketNavigationNode
	MarketSingle
	MarketsMulti
	PricesDefault
	PricesCount
	PricesRange
)

// endpointSpec fixes the wire contract of one endpoint: HTTP method,
// path template, number of required path parameters and the value of
// the VERSION header.
type endpointSpec struct {
	method   string
	template string
	params   int
	version  int
}

var endpoints = map[Endpoint]endpointSpec{
	Login:                {method: "POST", template: "/session", params: 0, version: 1},
	Accounts:             {method: "GET", template: "/accounts", params: 0, version: 1},
	AccountPreferences:   {method: "GET", template: "/accounts/preferences", params: 0, version: 1},
	ActivityFiltered:     {method: "GET", template: "/history/activity", params: 0, version: 3},
	ActivityRange:        {method: "GET", template: "/history/activity/%s/%s", params: 2, version: 1},
	ActivityPeriod:       {method: "GET", template: "/history/activity/%s", params: 1, version: 1},
	Transactions:         {method: "GET", template: "/history/transactions", params: 0, version: 2},
	Positions:            {method: "GET", template: "/positions", params: 0, version: 2},
	PositionByDealID:     {method: "GET", template: "/positions/%s", params: 1, version: 2},
	MarketNavigation:     {method: "GET", template: "/marketnavigation", params: 0, version: 1},
	MarketNavigationNode: {method: "GET", template: "/marketnavigation/%s", params: 1, version: 1},
	MarketSingle:         {method: "GET", template: "/markets/%s", params: 1, version: 3},
	MarketsMulti:         {method: "GET", template: "/markets/%s", params: 1, version: 3},
	PricesDefault:        {method: "GET", template: "/prices/%s", params: 1, version: 3},
	PricesCount:          {method: "GET", template: "/prices/%s/%s/%s", params: 3, version: 2},
	PricesRange:          {method: "GET", template: "/prices/%s/%s/%s/%s", params: 4, version: 2},
}
