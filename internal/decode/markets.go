package decode

import (
	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"

	"github.com/vadiminshakov/igsession/internal/domain"
)

// market decodes the flat market summary shape used by positions and
// node-scoped navigation.
func market(o obj) (domain.Market, error) {
	var m domain.Market
	var err error
	if m.Epic, err = o.str("epic"); err != nil {
		return domain.Market{}, err
	}
	if m.InstrumentName, err = o.str("instrumentName"); err != nil {
		return domain.Market{}, err
	}
	if m.InstrumentType, err = o.str("instrumentType"); err != nil {
		return domain.Market{}, err
	}
	if m.MarketStatus, err = o.str("marketStatus"); err != nil {
		return domain.Market{}, err
	}
	if m.Expiry, err = o.optStr("expiry"); err != nil {
		return domain.Market{}, err
	}
	if m.UpdateTime, err = o.optStr("updateTime"); err != nil {
		return domain.Market{}, err
	}
	if m.Bid, err = o.optDec("bid"); err != nil {
		return domain.Market{}, err
	}
	if m.Offer, err = o.optDec("offer"); err != nil {
		return domain.Market{}, err
	}
	if m.High, err = o.optDec("high"); err != nil {
		return domain.Market{}, err
	}
	if m.Low, err = o.optDec("low"); err != nil {
		return domain.Market{}, err
	}
	if m.LotSize, err = decOrZero(o, "lotSize"); err != nil {
		return domain.Market{}, err
	}
	if m.NetChange, err = decOrZero(o, "netChange"); err != nil {
		return domain.Market{}, err
	}
	if m.PercentageChange, err = decOrZero(o, "percentageChange"); err != nil {
		return domain.Market{}, err
	}
	if m.ScalingFactor, err = decOrZero(o, "scalingFactor"); err != nil {
		return domain.Market{}, err
	}
	if m.DelayTime, err = o.optInt("delayTime"); err != nil {
		return domain.Market{}, err
	}
	if m.StreamingPricesAvailable, err = o.optBool("streamingPricesAvailable"); err != nil {
		return domain.Market{}, err
	}
	return m, nil
}

// marketDetails flattens the nested instrument/snapshot blocks of the
// v3 market endpoints into the same Market record. The dealingRules
// block is not part of the output contract and is dropped.
func marketDetails(o obj) (domain.Market, error) {
	instrument, err := o.child("instrument")
	if err != nil {
		return domain.Market{}, err
	}
	snapshot, err := o.child("snapshot")
	if err != nil {
		return domain.Market{}, err
	}

	var m domain.Market
	if m.Epic, err = instrument.str("epic"); err != nil {
		return domain.Market{}, err
	}
	if m.InstrumentName, err = instrument.str("name"); err != nil {
		return domain.Market{}, err
	}
	if m.InstrumentType, err = instrument.str("type"); err != nil {
		return domain.Market{}, err
	}
	if m.Expiry, err = instrument.optStr("expiry"); err != nil {
		return domain.Market{}, err
	}
	if m.LotSize, err = decOrZero(instrument, "lotSize"); err != nil {
		return domain.Market{}, err
	}
	if m.StreamingPricesAvailable, err = instrument.optBool("streamingPricesAvailable"); err != nil {
		return domain.Market{}, err
	}
	if m.MarketStatus, err = snapshot.str("marketStatus"); err != nil {
		return domain.Market{}, err
	}
	if m.UpdateTime, err = snapshot.optStr("updateTime"); err != nil {
		return domain.Market{}, err
	}
	if m.Bid, err = snapshot.optDec("bid"); err != nil {
		return domain.Market{}, err
	}
	if m.Offer, err = snapshot.optDec("offer"); err != nil {
		return domain.Market{}, err
	}
	if m.High, err = snapshot.optDec("high"); err != nil {
		return domain.Market{}, err
	}
	if m.Low, err = snapshot.optDec("low"); err != nil {
		return domain.Market{}, err
	}
	if m.NetChange, err = decOrZero(snapshot, "netChange"); err != nil {
		return domain.Market{}, err
	}
	if m.PercentageChange, err = decOrZero(snapshot, "percentageChange"); err != nil {
		return domain.Market{}, err
	}
	if m.ScalingFactor, err = decOrZero(snapshot, "scalingFactor"); err != nil {
		return domain.Market{}, err
	}
	if m.DelayTime, err = snapshot.optInt("delayTime"); err != nil {
		return domain.Market{}, err
	}
	return m, nil
}

// Market decodes GET /markets/{epic}.
func Market(v *fastjson.Value) (*domain.Market, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}
	m, err := marketDetails(o)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Markets decodes GET /markets/{epics}.
func Markets(v *fastjson.Value) ([]domain.Market, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}
	items, err := o.array("marketDetails")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Market, 0, len(items))
	for _, it := range items {
		m, err := marketDetails(it)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func decOrZero(o obj, name string) (decimal.Decimal, error) {
	d, err := o.optDec(name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d == nil {
		return decimal.Decimal{}, nil
	}
	return *d, nil
}
