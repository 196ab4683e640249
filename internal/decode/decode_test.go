package decode

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"

	"github.com/vadiminshakov/igsession/internal/domain"
)

const loginBody = `{
	"accountType": "CFD",
	"accountInfo": {"balance": 1000.5, "deposit": 0, "profitLoss": -12.3, "available": 988.2},
	"currencyIsoCode": "EUR",
	"currencySymbol": "E",
	"currentAccountId": "ABC123",
	"lightstreamerEndpoint": "https://demo-apd.marketdatasystems.com",
	"accounts": [
		{"accountId": "ABC123", "accountName": "CFD", "preferred": true, "accountType": "CFD"},
		{"accountId": "DEF456", "accountName": "Spread bet", "preferred": false, "accountType": "SPREADBET"}
	],
	"clientId": "100002848",
	"timezoneOffset": 1,
	"hasActiveDemoAccounts": true,
	"hasActiveLiveAccounts": false,
	"trailingStopsEnabled": false,
	"reroutingEnvironment": null,
	"dealingEnabled": true
}`

func loginHeader() http.Header {
	h := http.Header{}
	h.Set("CST", "cst-token")
	h.Set("X-SECURITY-TOKEN", "xst-token")
	return h
}

func TestLogin(t *testing.T) {
	st, err := Login(loginHeader(), fastjson.MustParse(loginBody))
	require.NoError(t, err)

	assert.Equal(t, "cst-token", st.CST)
	assert.Equal(t, "xst-token", st.SecurityToken)
	assert.True(t, st.Authenticated())

	assert.Equal(t, "CFD", st.AccountType)
	assert.Equal(t, "EUR", st.CurrencyISOCode)
	assert.Equal(t, "ABC123", st.CurrentAccountID)
	assert.Equal(t, "100002848", st.ClientID)
	assert.Equal(t, 1, st.TimezoneOffset)
	assert.True(t, st.HasActiveDemoAccounts)
	assert.False(t, st.HasActiveLiveAccounts)
	assert.True(t, st.DealingEnabled)
	assert.Equal(t, "", st.ReroutingEnvironment, "null decodes as empty")
	assert.True(t, st.AccountInfo.Balance.Equal(decimal.NewFromFloat(1000.5)))
	assert.True(t, st.AccountInfo.ProfitLoss.Equal(decimal.NewFromFloat(-12.3)))

	require.Len(t, st.Accounts, 2)
	assert.Equal(t, "DEF456", st.Accounts[1].AccountID)
	assert.True(t, st.Accounts[0].Preferred)

	// credentials are the session's to re-inject, never the decoder's
	assert.Empty(t, st.Identifier)
	assert.Empty(t, st.Password)
	assert.Empty(t, st.APIKey)
}

func TestLogin_MissingTokenHeader(t *testing.T) {
	h := http.Header{}
	h.Set("CST", "cst-token")

	var decodeErr *domain.DecodeError
	_, err := Login(h, fastjson.MustParse(loginBody))
	require.ErrorAs(t, err, &decodeErr)
}

func TestLogin_MissingRequiredField(t *testing.T) {
	var decodeErr *domain.DecodeError
	_, err := Login(loginHeader(), fastjson.MustParse(`{"accountType": "CFD"}`))
	require.ErrorAs(t, err, &decodeErr)
}

func TestAccounts(t *testing.T) {
	body := `{"accounts": [{
		"accountId": "ABC123",
		"accountName": "CFD",
		"accountAlias": null,
		"status": "ENABLED",
		"accountType": "CFD",
		"preferred": true,
		"balance": {"balance": 500, "deposit": 100, "profitLoss": 25.5, "available": 400},
		"currency": "EUR",
		"canTransferFrom": true,
		"canTransferTo": true
	}]}`

	accounts, err := Accounts(fastjson.MustParse(body))
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	a := accounts[0]
	assert.Equal(t, "ABC123", a.AccountID)
	assert.Equal(t, "", a.AccountAlias)
	assert.Equal(t, "ENABLED", a.Status)
	assert.True(t, a.Balance.ProfitLoss.Equal(decimal.NewFromFloat(25.5)))
	assert.True(t, a.CanTransferFrom)
}

func TestAccountPreferences(t *testing.T) {
	prefs, err := AccountPreferences(fastjson.MustParse(`{"trailingStopsEnabled": true}`))
	require.NoError(t, err)
	assert.True(t, prefs.TrailingStopsEnabled)

	var decodeErr *domain.DecodeError
	_, err = AccountPreferences(fastjson.MustParse(`{}`))
	require.ErrorAs(t, err, &decodeErr)
}

func TestActivity_DetailsAbsent(t *testing.T) {
	body := `{"activities": [{
		"date": "2024-01-15T10:00:00",
		"epic": "CS.D.EURUSD.CFD.IP",
		"dealId": "DIAAAA111",
		"period": "DFB",
		"type": "POSITION",
		"status": "ACCEPTED",
		"channel": "WEB",
		"description": "Position opened"
	}],
	"metadata": {"paging": {"next": null, "size": 1}}}`

	page, err := Activities(fastjson.MustParse(body))
	require.NoError(t, err)
	require.Len(t, page.Activities, 1)

	a := page.Activities[0]
	assert.Nil(t, a.Details, "absent details stays nil, never a zero record")
	assert.Equal(t, "POSITION", a.Type)
	assert.Nil(t, page.Paging.Next)
	assert.Equal(t, 1, page.Paging.Size)
}

func TestActivity_DetailsPresent(t *testing.T) {
	body := `{"activities": [{
		"date": "2024-01-15T10:00:00",
		"type": "POSITION",
		"status": "ACCEPTED",
		"details": {
			"dealReference": "REF1",
			"marketName": "EUR/USD",
			"currency": "EUR",
			"direction": "BUY",
			"size": 2,
			"level": 1.0845,
			"stopLevel": 1.0800,
			"guaranteedStop": false,
			"actions": [{"actionType": "POSITION_OPENED", "affectedDealId": "DIAAAA111"}]
		}
	}],
	"metadata": {"paging": {"next": "/history/activity?pageSize=1", "size": 1}}}`

	page, err := Activities(fastjson.MustParse(body))
	require.NoError(t, err)
	require.Len(t, page.Activities, 1)

	d := page.Activities[0].Details
	require.NotNil(t, d)
	assert.Equal(t, "REF1", d.DealReference)
	assert.Equal(t, "EUR/USD", d.MarketName)
	assert.True(t, d.Size.Equal(decimal.NewFromInt(2)))
	require.NotNil(t, d.StopLevel)
	assert.True(t, d.StopLevel.Equal(decimal.NewFromFloat(1.08)))
	assert.Nil(t, d.LimitLevel)
	require.Len(t, d.Actions, 1)
	assert.Equal(t, "POSITION_OPENED", d.Actions[0].ActionType)

	require.NotNil(t, page.Paging.Next)
	assert.Equal(t, "/history/activity?pageSize=1", *page.Paging.Next)
}

func TestActivity_NoMetadataOnV1Shapes(t *testing.T) {
	page, err := Activities(fastjson.MustParse(`{"activities": []}`))
	require.NoError(t, err)
	assert.Empty(t, page.Activities)
	assert.Nil(t, page.Paging.Next)
	assert.Zero(t, page.Paging.Size)
}

func TestTransactions(t *testing.T) {
	body := `{"transactions": [{
		"date": "15/01/24",
		"dateUtc": "2024-01-15T10:00:00",
		"instrumentName": "EUR/USD",
		"period": "DFB",
		"profitAndLoss": "E12.50",
		"transactionType": "DEAL",
		"reference": "REF1",
		"openLevel": "1.0845",
		"closeLevel": "1.0860",
		"size": "+2",
		"currency": "E",
		"cashTransaction": false
	}],
	"metadata": {"pageData": {"pageNumber": 1, "pageSize": 20, "totalPages": 3}, "size": 42}}`

	page, err := Transactions(fastjson.MustParse(body))
	require.NoError(t, err)
	require.Len(t, page.Transactions, 1)

	tx := page.Transactions[0]
	assert.Equal(t, "DEAL", tx.TransactionType)
	assert.Equal(t, "E12.50", tx.ProfitAndLoss)
	assert.False(t, tx.CashTransaction)

	assert.Equal(t, 1, page.Metadata.PageData.PageNumber)
	assert.Equal(t, 20, page.Metadata.PageData.PageSize)
	assert.Equal(t, 3, page.Metadata.PageData.TotalPages)
	assert.Equal(t, 42, page.Metadata.Size)
}

func TestTransactions_MetadataRequired(t *testing.T) {
	var decodeErr *domain.DecodeError
	_, err := Transactions(fastjson.MustParse(`{"transactions": []}`))
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "metadata", decodeErr.Field)
}

const positionBody = `{
	"position": {
		"contractSize": 1,
		"createdDate": "2024/01/15 10:00:00",
		"dealId": "DIAAAA111",
		"size": 2,
		"direction": "BUY",
		"level": 1.0845,
		"currency": "EUR",
		"controlledRisk": false,
		"stopLevel": null,
		"limitLevel": 1.0900
	},
	"market": {
		"instrumentName": "EUR/USD",
		"expiry": "-",
		"epic": "CS.D.EURUSD.CFD.IP",
		"instrumentType": "CURRENCIES",
		"lotSize": 1,
		"high": 1.0880,
		"low": 1.0820,
		"percentageChange": 0.12,
		"netChange": 0.0013,
		"bid": 1.0858,
		"offer": 1.0860,
		"updateTime": "10:05:00",
		"delayTime": 0,
		"streamingPricesAvailable": true,
		"marketStatus": "TRADEABLE",
		"scalingFactor": 10000
	}
}`

func TestPosition(t *testing.T) {
	op, err := Position(fastjson.MustParse(positionBody))
	require.NoError(t, err)

	assert.Equal(t, "DIAAAA111", op.Position.DealID)
	assert.Equal(t, "BUY", op.Position.Direction)
	assert.True(t, op.Position.Level.Equal(decimal.NewFromFloat(1.0845)))
	assert.Nil(t, op.Position.StopLevel, "present-with-null stays nil")
	require.NotNil(t, op.Position.LimitLevel)
	assert.True(t, op.Position.LimitLevel.Equal(decimal.NewFromFloat(1.09)))

	assert.Equal(t, "CS.D.EURUSD.CFD.IP", op.Market.Epic)
	assert.Equal(t, "TRADEABLE", op.Market.MarketStatus)
	require.NotNil(t, op.Market.Bid)
	assert.True(t, op.Market.Bid.Equal(decimal.NewFromFloat(1.0858)))
}

func TestPosition_MissingSubObject(t *testing.T) {
	var decodeErr *domain.DecodeError

	_, err := Position(fastjson.MustParse(`{"position": {"dealId": "X"}}`))
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "market", decodeErr.Field)

	_, err = Position(fastjson.MustParse(`{"market": {"epic": "X"}}`))
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "position", decodeErr.Field)
}

func TestPositions_SingleBadElementFailsList(t *testing.T) {
	body := `{"positions": [` + positionBody + `, {"position": {}}]}`
	var decodeErr *domain.DecodeError
	_, err := Positions(fastjson.MustParse(body))
	require.ErrorAs(t, err, &decodeErr)
}

func TestRootNavigation(t *testing.T) {
	body := `{"nodes": [{"id": "1", "name": "A"}], "markets": ["M1"]}`

	nav, err := RootNavigation(fastjson.MustParse(body))
	require.NoError(t, err)

	require.Len(t, nav.Nodes, 1)
	assert.Equal(t, domain.NodeSummary{ID: "1", Name: "A"}, nav.Nodes[0])

	require.Len(t, nav.Markets, 1)
	assert.JSONEq(t, `"M1"`, string(nav.Markets[0]), "markets pass through raw")
}

func TestNodeNavigation(t *testing.T) {
	body := `{
		"nodes": [{"id": "1", "name": "A"}],
		"markets": [{
			"epic": "CS.D.EURUSD.CFD.IP",
			"instrumentName": "EUR/USD",
			"instrumentType": "CURRENCIES",
			"marketStatus": "TRADEABLE",
			"bid": 1.0858,
			"offer": 1.0860
		}]
	}`

	nav, err := NodeNavigation(fastjson.MustParse(body))
	require.NoError(t, err)

	require.Len(t, nav.Nodes, 1)
	assert.JSONEq(t, `{"id":"1","name":"A"}`, string(nav.Nodes[0]), "nodes pass through raw")

	require.Len(t, nav.Markets, 1)
	assert.Equal(t, "CS.D.EURUSD.CFD.IP", nav.Markets[0].Epic)
}

func TestNodeNavigation_MarketMissingEpic(t *testing.T) {
	body := `{"nodes": [], "markets": [{"instrumentName": "EUR/USD"}]}`
	var decodeErr *domain.DecodeError
	_, err := NodeNavigation(fastjson.MustParse(body))
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Field, "epic")
}

func TestPrices(t *testing.T) {
	body := `{
		"prices": [{
			"snapshotTime": "2024/01/15 10:00:00",
			"openPrice": {"bid": 1.0840, "ask": 1.0842, "lastTraded": null},
			"closePrice": {"bid": 1.0850, "ask": 1.0852, "lastTraded": null},
			"highPrice": {"bid": 1.0860, "ask": 1.0862, "lastTraded": null},
			"lowPrice": {"bid": 1.0830, "ask": 1.0832, "lastTraded": null},
			"lastTradedVolume": 12345
		}],
		"instrumentType": "CURRENCIES",
		"allowance": {"remainingAllowance": 9990, "totalAllowance": 10000, "allowanceExpiry": 604800}
	}`

	list, err := Prices(fastjson.MustParse(body))
	require.NoError(t, err)

	assert.Equal(t, "CURRENCIES", list.InstrumentType)
	assert.Nil(t, list.Metadata)
	require.Len(t, list.Prices, 1)

	p := list.Prices[0]
	assert.Equal(t, "2024/01/15 10:00:00", p.SnapshotTime)
	require.NotNil(t, p.OpenPrice.Bid)
	assert.True(t, p.OpenPrice.Bid.Equal(decimal.NewFromFloat(1.084)))
	assert.Nil(t, p.OpenPrice.LastTraded)
	require.NotNil(t, p.LastTradedVolume)
	assert.True(t, p.LastTradedVolume.Equal(decimal.NewFromInt(12345)))
}

func TestPrices_WithMetadata(t *testing.T) {
	body := `{
		"prices": [],
		"instrumentType": "CURRENCIES",
		"metadata": {"pageData": {"pageNumber": 1, "pageSize": 20, "totalPages": 1}, "size": 0},
		"allowance": {"remainingAllowance": 9990, "totalAllowance": 10000, "allowanceExpiry": 604800}
	}`

	list, err := Prices(fastjson.MustParse(body))
	require.NoError(t, err)
	require.NotNil(t, list.Metadata)
	assert.Equal(t, 1, list.Metadata.PageData.PageNumber)
	assert.Equal(t, 0, list.Metadata.Size)
}

func TestMarket_FlattensInstrumentAndSnapshot(t *testing.T) {
	body := `{
		"instrument": {
			"epic": "CS.D.EURUSD.CFD.IP",
			"expiry": "-",
			"name": "EUR/USD",
			"type": "CURRENCIES",
			"lotSize": 1,
			"streamingPricesAvailable": true
		},
		"dealingRules": {"minDealSize": {"unit": "AMOUNT", "value": 1}},
		"snapshot": {
			"marketStatus": "TRADEABLE",
			"netChange": 0.0013,
			"percentageChange": 0.12,
			"updateTime": "10:05:00",
			"delayTime": 0,
			"bid": 1.0858,
			"offer": 1.0860,
			"high": 1.0880,
			"low": 1.0820,
			"scalingFactor": 10000
		}
	}`

	m, err := Market(fastjson.MustParse(body))
	require.NoError(t, err)
	assert.Equal(t, "CS.D.EURUSD.CFD.IP", m.Epic)
	assert.Equal(t, "EUR/USD", m.InstrumentName)
	assert.Equal(t, "CURRENCIES", m.InstrumentType)
	assert.Equal(t, "TRADEABLE", m.MarketStatus)
	assert.True(t, m.StreamingPricesAvailable)
	require.NotNil(t, m.Offer)
	assert.True(t, m.Offer.Equal(decimal.NewFromFloat(1.086)))
}

func TestMarkets(t *testing.T) {
	body := `{"marketDetails": [
		{
			"instrument": {"epic": "A.B.C", "name": "One", "type": "SHARES"},
			"snapshot": {"marketStatus": "TRADEABLE"}
		},
		{
			"instrument": {"epic": "D.E.F", "name": "Two", "type": "SHARES"},
			"snapshot": {"marketStatus": "CLOSED"}
		}
	]}`

	ms, err := Markets(fastjson.MustParse(body))
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, "A.B.C", ms[0].Epic)
	assert.Equal(t, "CLOSED", ms[1].MarketStatus)
	assert.Nil(t, ms[1].Bid)
}

func TestRoot_NotAnObject(t *testing.T) {
	var decodeErr *domain.DecodeError
	_, err := Accounts(fastjson.MustParse(`[1, 2, 3]`))
	require.ErrorAs(t, err, &decodeErr)
}
