package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/igsession/internal/domain"
)

var testAuth = Auth{APIKey: "key-1", CST: "cst-1", SecurityToken: "xst-1"}

func TestBuild_PathsAndVersions(t *testing.T) {
	tests := []struct {
		name     string
		ep       Endpoint
		params   []string
		wantPath string
		wantVer  int
		wantMeth string
	}{
		{"login", Login, nil, "/session", 1, "POST"},
		{"accounts", Accounts, nil, "/accounts", 1, "GET"},
		{"preferences", AccountPreferences, nil, "/accounts/preferences", 1, "GET"},
		{"activity filtered", ActivityFiltered, nil, "/history/activity", 3, "GET"},
		{"activity range", ActivityRange, []string{"01-02-2024", "28-02-2024"}, "/history/activity/01-02-2024/28-02-2024", 1, "GET"},
		{"activity period", ActivityPeriod, []string{"3600000"}, "/history/activity/3600000", 1, "GET"},
		{"transactions", Transactions, nil, "/history/transactions", 2, "GET"},
		{"positions", Positions, nil, "/positions", 2, "GET"},
		{"position", PositionByDealID, []string{"DIAAAABBBCCC123"}, "/positions/DIAAAABBBCCC123", 2, "GET"},
		{"nav root", MarketNavigation, nil, "/marketnavigation", 1, "GET"},
		{"nav node", MarketNavigationNode, []string{"97601"}, "/marketnavigation/97601", 1, "GET"},
		{"market single", MarketSingle, []string{"CS.D.EURUSD.CFD.IP"}, "/markets/CS.D.EURUSD.CFD.IP", 3, "GET"},
		{"markets multi", MarketsMulti, []string{"CS.D.EURUSD.CFD.IP,IX.D.FTSE.DAILY.IP"}, "/markets/CS.D.EURUSD.CFD.IP,IX.D.FTSE.DAILY.IP", 3, "GET"},
		{"prices default", PricesDefault, []string{"CS.D.EURUSD.CFD.IP"}, "/prices/CS.D.EURUSD.CFD.IP", 3, "GET"},
		{"prices count", PricesCount, []string{"CS.D.EURUSD.CFD.IP", "MINUTE", "10"}, "/prices/CS.D.EURUSD.CFD.IP/MINUTE/10", 2, "GET"},
		{"prices range", PricesRange, []string{"CS.D.EURUSD.CFD.IP", "DAY", "2024-01-01 00:00:00", "2024-02-01 00:00:00"}, "/prices/CS.D.EURUSD.CFD.IP/DAY/2024-01-01%2000:00:00/2024-02-01%2000:00:00", 2, "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Build(tt.ep, testAuth, tt.params, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, spec.Path)
			assert.Equal(t, tt.wantVer, spec.Version)
			assert.Equal(t, tt.wantMeth, spec.Method)
			assert.Equal(t, tt.wantPath, spec.URL(), "no query means no query string")
		})
	}
}

func TestBuild_Headers(t *testing.T) {
	spec, err := Build(Positions, testAuth, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "key-1", spec.Headers.Get("X-IG-API-KEY"))
	assert.Equal(t, "cst-1", spec.Headers.Get("CST"))
	assert.Equal(t, "xst-1", spec.Headers.Get("X-SECURITY-TOKEN"))
	assert.Equal(t, "2", spec.Headers.Get("VERSION"))
}

func TestBuild_LoginOmitsTokenHeaders(t *testing.T) {
	spec, err := Build(Login, testAuth, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "key-1", spec.Headers.Get("X-IG-API-KEY"))
	_, hasCST := spec.Headers["Cst"]
	_, hasXST := spec.Headers["X-Security-Token"]
	assert.False(t, hasCST)
	assert.False(t, hasXST)
}

func TestBuild_EmptyTokensStillSent(t *testing.T) {
	// pre-login calls carry the token headers as empty strings and let
	// the server reject them
	spec, err := Build(Accounts, Auth{APIKey: "key-1"}, nil, nil)
	require.NoError(t, err)

	_, hasCST := spec.Headers["Cst"]
	_, hasXST := spec.Headers["X-Security-Token"]
	assert.True(t, hasCST)
	assert.True(t, hasXST)
	assert.Equal(t, "", spec.Headers.Get("CST"))
	assert.Equal(t, "", spec.Headers.Get("X-SECURITY-TOKEN"))
}

func TestBuild_InvalidParams(t *testing.T) {
	var invalid *domain.InvalidArgumentError

	_, err := Build(PositionByDealID, testAuth, nil, nil)
	require.ErrorAs(t, err, &invalid)

	_, err = Build(PositionByDealID, testAuth, []string{""}, nil)
	require.ErrorAs(t, err, &invalid)

	_, err = Build(Accounts, testAuth, []string{"stray"}, nil)
	require.ErrorAs(t, err, &invalid)
}

func TestBuild_EscapesPathSegments(t *testing.T) {
	spec, err := Build(MarketSingle, testAuth, []string{"weird/epic name"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/markets/weird%2Fepic%20name", spec.Path)
}

func TestEncodeParams_RoundTrip(t *testing.T) {
	params := map[string]string{
		"from":     "2024-01-01T00:00:00",
		"to":       "2024-02-01T00:00:00",
		"pageSize": "50",
		"dealId":   "DIAAAABBBCCC123",
		"detailed": "true",
	}

	q := EncodeParams(params)
	parsed, err := url.ParseQuery(q.Encode())
	require.NoError(t, err)

	got := map[string]string{}
	for k, vs := range parsed {
		require.Len(t, vs, 1)
		got[k] = vs[0]
	}
	assert.Equal(t, params, got, "keys are used verbatim, values survive encoding")
}

func TestEncodeParams_EmptyMapOmitsQuery(t *testing.T) {
	assert.Nil(t, EncodeParams(nil))
	assert.Nil(t, EncodeParams(map[string]string{}))

	spec, err := Build(ActivityFiltered, testAuth, nil, EncodeParams(nil))
	require.NoError(t, err)
	assert.Equal(t, "/history/activity", spec.URL())
}
