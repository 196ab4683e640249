package decode

import (
	"github.com/valyala/fastjson"

	"github.com/vadiminshakov/igsession/internal/domain"
)

// Prices decodes a historical price series. The upstream allowance
// block is dropped; the {pageData, size} metadata block is attached
// when present (the v3 default listing) and left nil otherwise.
func Prices(v *fastjson.Value) (*domain.PriceList, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}

	list := &domain.PriceList{}
	if list.InstrumentType, err = o.str("instrumentType"); err != nil {
		return nil, err
	}

	items, err := o.array("prices")
	if err != nil {
		return nil, err
	}
	list.Prices = make([]domain.PricePoint, 0, len(items))
	for _, it := range items {
		p, err := pricePoint(it)
		if err != nil {
			return nil, err
		}
		list.Prices = append(list.Prices, p)
	}

	if o.present("metadata") {
		md, err := o.child("metadata")
		if err != nil {
			return nil, err
		}
		meta, err := pageMetadata(md)
		if err != nil {
			return nil, err
		}
		list.Metadata = &meta
	}
	return list, nil
}

func pricePoint(o obj) (domain.PricePoint, error) {
	var p domain.PricePoint
	var err error
	if p.SnapshotTime, err = o.str("snapshotTime"); err != nil {
		return domain.PricePoint{}, err
	}
	if p.OpenPrice, err = priceQuote(o, "openPrice"); err != nil {
		return domain.PricePoint{}, err
	}
	if p.ClosePrice, err = priceQuote(o, "closePrice"); err != nil {
		return domain.PricePoint{}, err
	}
	if p.HighPrice, err = priceQuote(o, "highPrice"); err != nil {
		return domain.PricePoint{}, err
	}
	if p.LowPrice, err = priceQuote(o, "lowPrice"); err != nil {
		return domain.PricePoint{}, err
	}
	if p.LastTradedVolume, err = o.optDec("lastTradedVolume"); err != nil {
		return domain.PricePoint{}, err
	}
	return p, nil
}

func priceQuote(o obj, name string) (domain.PriceQuote, error) {
	qo, err := o.child(name)
	if err != nil {
		return domain.PriceQuote{}, err
	}
	var q domain.PriceQuote
	if q.Bid, err = qo.optDec("bid"); err != nil {
		return domain.PriceQuote{}, err
	}
	if q.Ask, err = qo.optDec("ask"); err != nil {
		return domain.PriceQuote{}, err
	}
	if q.LastTraded, err = qo.optDec("lastTraded"); err != nil {
		return domain.PriceQuote{}, err
	}
	return q, nil
}
