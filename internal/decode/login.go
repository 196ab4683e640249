package decode

import (
	"net/http"

	"github.com/valyala/fastjson"

	"github.com/vadiminshakov/igsession/internal/domain"
)

// Login decodes a successful POST /session reply. The token pair comes
// from the response headers, everything else from the body. The
// returned state carries no credentials; the session re-injects them.
func Login(hdr http.Header, v *fastjson.Value) (*domain.SessionState, error) {
	cst := hdr.Get("CST")
	xst := hdr.Get("X-SECURITY-TOKEN")
	if cst == "" || xst == "" {
		return nil, &domain.DecodeError{Field: "CST/X-SECURITY-TOKEN", Reason: "token headers missing on login response"}
	}

	o, err := root(v)
	if err != nil {
		return nil, err
	}

	st := &domain.SessionState{CST: cst, SecurityToken: xst}
	if st.AccountType, err = o.str("accountType"); err != nil {
		return nil, err
	}
	if st.CurrencyISOCode, err = o.str("currencyIsoCode"); err != nil {
		return nil, err
	}
	if st.CurrencySymbol, err = o.str("currencySymbol"); err != nil {
		return nil, err
	}
	if st.CurrentAccountID, err = o.str("currentAccountId"); err != nil {
		return nil, err
	}
	if st.LightstreamerEndpoint, err = o.str("lightstreamerEndpoint"); err != nil {
		return nil, err
	}
	if st.ClientID, err = o.str("clientId"); err != nil {
		return nil, err
	}
	if st.TimezoneOffset, err = o.integer("timezoneOffset"); err != nil {
		return nil, err
	}
	if st.HasActiveDemoAccounts, err = o.boolean("hasActiveDemoAccounts"); err != nil {
		return nil, err
	}
	if st.HasActiveLiveAccounts, err = o.boolean("hasActiveLiveAccounts"); err != nil {
		return nil, err
	}
	if st.TrailingStopsEnabled, err = o.boolean("trailingStopsEnabled"); err != nil {
		return nil, err
	}
	if st.ReroutingEnvironment, err = o.optStr("reroutingEnvironment"); err != nil {
		return nil, err
	}
	if st.DealingEnabled, err = o.optBool("dealingEnabled"); err != nil {
		return nil, err
	}

	info, err := o.child("accountInfo")
	if err != nil {
		return nil, err
	}
	if st.AccountInfo.Balance, err = info.dec("balance"); err != nil {
		return nil, err
	}
	if st.AccountInfo.Deposit, err = info.dec("deposit"); err != nil {
		return nil, err
	}
	if st.AccountInfo.ProfitLoss, err = info.dec("profitLoss"); err != nil {
		return nil, err
	}
	if st.AccountInfo.Available, err = info.dec("available"); err != nil {
		return nil, err
	}

	items, err := o.array("accounts")
	if err != nil {
		return nil, err
	}
	st.Accounts = make([]domain.AccountSummary, 0, len(items))
	for _, it := range items {
		var a domain.AccountSummary
		if a.AccountID, err = it.str("accountId"); err != nil {
			return nil, err
		}
		if a.AccountName, err = it.str("accountName"); err != nil {
			return nil, err
		}
		if a.AccountType, err = it.str("accountType"); err != nil {
			return nil, err
		}
		if a.Preferred, err = it.boolean("preferred"); err != nil {
			return nil, err
		}
		st.Accounts = append(st.Accounts, a)
	}

	return st, nil
}
