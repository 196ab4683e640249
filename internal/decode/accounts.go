package decode

import (
	"github.com/valyala/fastjson"

	"github.com/vadiminshakov/igsession/internal/domain"
)

// Accounts decodes the GET /accounts listing.
func Accounts(v *fastjson.Value) ([]domain.Account, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}
	items, err := o.array("accounts")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Account, 0, len(items))
	for _, it := range items {
		var a domain.Account
		if a.AccountID, err = it.str("accountId"); err != nil {
			return nil, err
		}
		if a.AccountName, err = it.str("accountName"); err != nil {
			return nil, err
		}
		if a.AccountAlias, err = it.optStr("accountAlias"); err != nil {
			return nil, err
		}
		if a.AccountType, err = it.str("accountType"); err != nil {
			return nil, err
		}
		if a.Status, err = it.str("status"); err != nil {
			return nil, err
		}
		if a.Currency, err = it.str("currency"); err != nil {
			return nil, err
		}
		if a.Preferred, err = it.boolean("preferred"); err != nil {
			return nil, err
		}
		if a.CanTransferFrom, err = it.optBool("canTransferFrom"); err != nil {
			return nil, err
		}
		if a.CanTransferTo, err = it.optBool("canTransferTo"); err != nil {
			return nil, err
		}

		bal, err := it.child("balance")
		if err != nil {
			return nil, err
		}
		if a.Balance.Balance, err = bal.dec("balance"); err != nil {
			return nil, err
		}
		if a.Balance.Deposit, err = bal.dec("deposit"); err != nil {
			return nil, err
		}
		if a.Balance.ProfitLoss, err = bal.dec("profitLoss"); err != nil {
			return nil, err
		}
		if a.Balance.Available, err = bal.dec("available"); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// AccountPreferences decodes GET /accounts/preferences.
func AccountPreferences(v *fastjson.Value) (*domain.AccountPreferences, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}
	enabled, err := o.boolean("trailingStopsEnabled")
	if err != nil {
		return nil, err
	}
	return &domain.AccountPreferences{TrailingStopsEnabled: enabled}, nil
}
