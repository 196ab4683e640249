package decode

import (
	"github.com/valyala/fastjson"

	"github.com/vadiminshakov/igsession/internal/domain"
)

// openPosition decodes one {position, market} pair. Both sub-objects
// are required; missing either one fails the decode with no partial
// record.
func openPosition(o obj) (domain.OpenPosition, error) {
	po, err := o.child("position")
	if err != nil {
		return domain.OpenPosition{}, err
	}
	mo, err := o.child("market")
	if err != nil {
		return domain.OpenPosition{}, err
	}

	var p domain.Position
	if p.DealID, err = po.str("dealId"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.DealReference, err = po.optStr("dealReference"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.Direction, err = po.str("direction"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.Size, err = po.dec("size"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.Level, err = po.dec("level"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.Currency, err = po.str("currency"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.ContractSize, err = decOrZero(po, "contractSize"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.ControlledRisk, err = po.optBool("controlledRisk"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.CreatedDate, err = po.optStr("createdDate"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.StopLevel, err = po.optDec("stopLevel"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.LimitLevel, err = po.optDec("limitLevel"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.TrailingStep, err = po.optDec("trailingStep"); err != nil {
		return domain.OpenPosition{}, err
	}
	if p.TrailingStopDistance, err = po.optDec("trailingStopDistance"); err != nil {
		return domain.OpenPosition{}, err
	}

	m, err := market(mo)
	if err != nil {
		return domain.OpenPosition{}, err
	}
	return domain.OpenPosition{Position: p, Market: m}, nil
}

// Position decodes GET /positions/{dealId}.
func Position(v *fastjson.Value) (*domain.OpenPosition, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}
	op, err := openPosition(o)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// Positions decodes GET /positions.
func Positions(v *fastjson.Value) ([]domain.OpenPosition, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}
	items, err := o.array("positions")
	if err != nil {
		return nil, err
	}
	out := make([]domain.OpenPosition, 0, len(items))
	for _, it := range items {
		op, err := openPosition(it)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, nil
}
