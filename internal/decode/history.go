package decode

import (
	"github.com/valyala/fastjson"

	"github.com/vadiminshakov/igsession/internal/domain"
)

// activity decodes one activity entry. The details block is attached
// only when the key is present and non-null; the record's Details stays
// nil otherwise.
func activity(o obj) (domain.Activity, error) {
	var a domain.Activity
	var err error
	if a.Date, err = o.str("date"); err != nil {
		return domain.Activity{}, err
	}
	if a.Epic, err = o.optStr("epic"); err != nil {
		return domain.Activity{}, err
	}
	if a.DealID, err = o.optStr("dealId"); err != nil {
		return domain.Activity{}, err
	}
	if a.Period, err = o.optStr("period"); err != nil {
		return domain.Activity{}, err
	}
	if a.Type, err = o.str("type"); err != nil {
		return domain.Activity{}, err
	}
	if a.Status, err = o.str("status"); err != nil {
		return domain.Activity{}, err
	}
	if a.Channel, err = o.optStr("channel"); err != nil {
		return domain.Activity{}, err
	}
	if a.Description, err = o.optStr("description"); err != nil {
		return domain.Activity{}, err
	}

	if o.present("details") {
		d, err := o.child("details")
		if err != nil {
			return domain.Activity{}, err
		}
		detail, err := activityDetail(d)
		if err != nil {
			return domain.Activity{}, err
		}
		a.Details = detail
	}
	return a, nil
}

func activityDetail(o obj) (*domain.ActivityDetail, error) {
	var d domain.ActivityDetail
	var err error
	if d.DealReference, err = o.optStr("dealReference"); err != nil {
		return nil, err
	}
	if d.MarketName, err = o.optStr("marketName"); err != nil {
		return nil, err
	}
	if d.Currency, err = o.optStr("currency"); err != nil {
		return nil, err
	}
	if d.Direction, err = o.optStr("direction"); err != nil {
		return nil, err
	}
	if d.GoodTillDate, err = o.optStr("goodTillDate"); err != nil {
		return nil, err
	}
	if d.Size, err = decOrZero(o, "size"); err != nil {
		return nil, err
	}
	if d.Level, err = decOrZero(o, "level"); err != nil {
		return nil, err
	}
	if d.StopLevel, err = o.optDec("stopLevel"); err != nil {
		return nil, err
	}
	if d.StopDistance, err = o.optDec("stopDistance"); err != nil {
		return nil, err
	}
	if d.LimitLevel, err = o.optDec("limitLevel"); err != nil {
		return nil, err
	}
	if d.LimitDistance, err = o.optDec("limitDistance"); err != nil {
		return nil, err
	}
	if d.TrailingStep, err = o.optDec("trailingStep"); err != nil {
		return nil, err
	}
	if d.TrailingStopDistance, err = o.optDec("trailingStopDistance"); err != nil {
		return nil, err
	}
	if d.GuaranteedStop, err = o.optBool("guaranteedStop"); err != nil {
		return nil, err
	}
	if o.present("actions") {
		items, err := o.array("actions")
		if err != nil {
			return nil, err
		}
		d.Actions = make([]domain.ActivityAction, 0, len(items))
		for _, it := range items {
			var act domain.ActivityAction
			if act.ActionType, err = it.str("actionType"); err != nil {
				return nil, err
			}
			if act.AffectedDealID, err = it.optStr("affectedDealId"); err != nil {
				return nil, err
			}
			d.Actions = append(d.Actions, act)
		}
	}
	return &d, nil
}

// Activities decodes one page of activity history. The metadata block
// is the activity-specific {next, size} shape; next is nil on the last
// page.
func Activities(v *fastjson.Value) (*domain.ActivityPage, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}
	items, err := o.array("activities")
	if err != nil {
		return nil, err
	}

	page := &domain.ActivityPage{Activities: make([]domain.Activity, 0, len(items))}
	for _, it := range items {
		a, err := activity(it)
		if err != nil {
			return nil, err
		}
		page.Activities = append(page.Activities, a)
	}

	// v1 date-range and period responses carry no metadata block at
	// all; the v3 filtered endpoint always does.
	if o.present("metadata") {
		md, err := o.child("metadata")
		if err != nil {
			return nil, err
		}
		paging, err := md.child("paging")
		if err != nil {
			return nil, err
		}
		if page.Paging.Next, err = paging.optStrPtr("next"); err != nil {
			return nil, err
		}
		if page.Paging.Size, err = paging.integer("size"); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// Transactions decodes one page of transaction history with its
// {pageData, size} metadata shape.
func Transactions(v *fastjson.Value) (*domain.TransactionPage, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}
	items, err := o.array("transactions")
	if err != nil {
		return nil, err
	}

	page := &domain.TransactionPage{Transactions: make([]domain.Transaction, 0, len(items))}
	for _, it := range items {
		var t domain.Transaction
		if t.Date, err = it.str("date"); err != nil {
			return nil, err
		}
		if t.DateUTC, err = it.optStr("dateUtc"); err != nil {
			return nil, err
		}
		if t.OpenDateUTC, err = it.optStr("openDateUtc"); err != nil {
			return nil, err
		}
		if t.InstrumentName, err = it.str("instrumentName"); err != nil {
			return nil, err
		}
		if t.Period, err = it.optStr("period"); err != nil {
			return nil, err
		}
		if t.ProfitAndLoss, err = it.str("profitAndLoss"); err != nil {
			return nil, err
		}
		if t.TransactionType, err = it.str("transactionType"); err != nil {
			return nil, err
		}
		if t.Reference, err = it.optStr("reference"); err != nil {
			return nil, err
		}
		if t.OpenLevel, err = it.optStr("openLevel"); err != nil {
			return nil, err
		}
		if t.CloseLevel, err = it.optStr("closeLevel"); err != nil {
			return nil, err
		}
		if t.Size, err = it.optStr("size"); err != nil {
			return nil, err
		}
		if t.Currency, err = it.optStr("currency"); err != nil {
			return nil, err
		}
		if t.CashTransaction, err = it.optBool("cashTransaction"); err != nil {
			return nil, err
		}
		page.Transactions = append(page.Transactions, t)
	}

	md, err := o.child("metadata")
	if err != nil {
		return nil, err
	}
	if page.Metadata, err = pageMetadata(md); err != nil {
		return nil, err
	}
	return page, nil
}

// pageMetadata decodes the shared {pageData:{pageNumber,pageSize,
// totalPages}, size} metadata shape.
func pageMetadata(o obj) (domain.PageMetadata, error) {
	var m domain.PageMetadata
	pd, err := o.child("pageData")
	if err != nil {
		return domain.PageMetadata{}, err
	}
	if m.PageData.PageNumber, err = pd.integer("pageNumber"); err != nil {
		return domain.PageMetadata{}, err
	}
	if m.PageData.PageSize, err = pd.integer("pageSize"); err != nil {
		return domain.PageMetadata{}, err
	}
	if m.PageData.TotalPages, err = pd.integer("totalPages"); err != nil {
		return domain.PageMetadata{}, err
	}
	if m.Size, err = o.integer("size"); err != nil {
		return domain.PageMetadata{}, err
	}
	return m, nil
}
