// Package session implements the serialized owner of one IG session.
// A Session runs a single worker goroutine consuming a job queue, so
// every operation observes session state either fully before or fully
// after a login, never in between.
package session

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"

	"github.com/vadiminshakov/igsession/internal/decode"
	"github.com/vadiminshakov/igsession/internal/domain"
	"github.com/vadiminshakov/igsession/internal/request"
	"github.com/vadiminshakov/igsession/internal/transport"
)

// ErrClosed is returned for operations submitted after Close.
var ErrClosed = errors.New("session closed")

// Credentials are fixed at construction and survive every login.
type Credentials struct {
	Demo       bool
	Identifier string
	Password   string
	APIKey     string
}

// Session is one logical broker session. All exported methods are safe
// for concurrent use; they are executed strictly one at a time in
// submission order by the worker goroutine.
type Session struct {
	transport transport.Doer
	log       *zap.Logger

	jobs      chan func()
	quit      chan struct{}
	closeOnce sync.Once

	// worker-owned; never touched outside the worker goroutine
	st     domain.SessionState
	parser fastjson.Parser
}

// New creates an unauthenticated session and starts its worker.
func New(creds Credentials, doer transport.Doer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		transport: doer,
		log:       log,
		jobs:      make(chan func()),
		quit:      make(chan struct{}),
		st: domain.SessionState{
			Demo:       creds.Demo,
			Identifier: creds.Identifier,
			Password:   creds.Password,
			APIKey:     creds.APIKey,
		},
	}
	go s.work()
	return s
}

// Close stops the worker. Operations already accepted still complete;
// later submissions fail with ErrClosed.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.quit) })
}

func (s *Session) work() {
	for {
		select {
		case fn := <-s.jobs:
			fn()
		case <-s.quit:
			return
		}
	}
}

type result[T any] struct {
	value T
	err   error
}

// call enqueues fn on the worker and waits for its reply. The enqueue
// and the wait both honor ctx; a job that was already accepted runs to
// completion regardless (its transport call carries the same ctx and
// cancels with it).
func call[T any](ctx context.Context, s *Session, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	res := make(chan result[T], 1)
	job := func() {
		v, err := fn(ctx)
		res <- result[T]{value: v, err: err}
	}

	select {
	case s.jobs <- job:
	case <-s.quit:
		return zero, ErrClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	select {
	case r := <-res:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (s *Session) auth() request.Auth {
	return request.Auth{
		APIKey:        s.st.APIKey,
		CST:           s.st.CST,
		SecurityToken: s.st.SecurityToken,
	}
}

// get builds the spec for ep, dispatches it and parses the body. Runs
// on the worker goroutine only.
func (s *Session) get(ctx context.Context, ep request.Endpoint, params []string, query url.Values) (*fastjson.Value, error) {
	spec, err := request.Build(ep, s.auth(), params, query)
	if err != nil {
		return nil, err
	}
	s.log.Debug("dispatch",
		zap.String("request_id", uuid.NewString()),
		zap.String("method", spec.Method),
		zap.String("path", spec.URL()),
		zap.Int("version", spec.Version))

	resp, err := s.transport.Get(ctx, s.st.Demo, spec.URL(), spec.Headers)
	if err != nil {
		return nil, &domain.RequestError{Err: err}
	}
	if resp.Status < 200 || resp.Status > 299 {
		return nil, &domain.RequestError{Status: resp.Status, Body: resp.Body}
	}
	v, err := s.parser.ParseBytes(resp.Body)
	if err != nil {
		return nil, &domain.DecodeError{Reason: "malformed response body: " + err.Error()}
	}
	return v, nil
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login authenticates the session. On success the whole state is
// replaced by the login payload with the construction-time credentials
// re-injected; on any failure the state is left exactly as it was.
func (s *Session) Login(ctx context.Context) error {
	_, err := call(ctx, s, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.login(ctx)
	})
	return err
}

func (s *Session) login(ctx context.Context) error {
	spec, err := request.Build(request.Login, request.Auth{APIKey: s.st.APIKey}, nil, nil)
	if err != nil {
		return err
	}
	body, err := json.Marshal(loginRequest{Identifier: s.st.Identifier, Password: s.st.Password})
	if err != nil {
		return &domain.AuthenticationError{Err: err}
	}

	resp, err := s.transport.Post(ctx, s.st.Demo, spec.URL(), spec.Headers, body)
	if err != nil {
		return &domain.AuthenticationError{Err: err}
	}
	if resp.Status < 200 || resp.Status > 299 {
		return &domain.AuthenticationError{Err: &domain.RequestError{Status: resp.Status, Body: resp.Body}}
	}
	v, err := s.parser.ParseBytes(resp.Body)
	if err != nil {
		return &domain.AuthenticationError{Err: &domain.DecodeError{Reason: "malformed login body: " + err.Error()}}
	}
	st, err := decode.Login(resp.Header, v)
	if err != nil {
		return &domain.AuthenticationError{Err: err}
	}

	st.Demo = s.st.Demo
	st.Identifier = s.st.Identifier
	st.Password = s.st.Password
	st.APIKey = s.st.APIKey
	s.st = *st

	s.log.Info("session authenticated",
		zap.String("account", s.st.CurrentAccountID),
		zap.Bool("demo", s.st.Demo))
	return nil
}

// State returns a snapshot of the session state, taken between
// operations so it is never torn by a login in flight.
func (s *Session) State(ctx context.Context) (domain.SessionState, error) {
	return call(ctx, s, func(context.Context) (domain.SessionState, error) {
		return s.st.Clone(), nil
	})
}

// Accounts lists the accounts of the logged-in client.
func (s *Session) Accounts(ctx context.Context) ([]domain.Account, error) {
	return call(ctx, s, func(ctx context.Context) ([]domain.Account, error) {
		v, err := s.get(ctx, request.Accounts, nil, nil)
		if err != nil {
			return nil, err
		}
		return decode.Accounts(v)
	})
}

// AccountPreferences fetches the preferences of the current account.
func (s *Session) AccountPreferences(ctx context.Context) (*domain.AccountPreferences, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.AccountPreferences, error) {
		v, err := s.get(ctx, request.AccountPreferences, nil, nil)
		if err != nil {
			return nil, err
		}
		return decode.AccountPreferences(v)
	})
}

// ActivityHistory fetches activity history filtered by the optional
// parameter map (keys used verbatim, e.g. "from", "to", "pageSize").
func (s *Session) ActivityHistory(ctx context.Context, params map[string]string) (*domain.ActivityPage, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.ActivityPage, error) {
		v, err := s.get(ctx, request.ActivityFiltered, nil, request.EncodeParams(params))
		if err != nil {
			return nil, err
		}
		return decode.Activities(v)
	})
}

// ActivityHistorySince fetches activity for the trailing period,
// expressed upstream in milliseconds.
func (s *Session) ActivityHistorySince(ctx context.Context, period time.Duration) (*domain.ActivityPage, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.ActivityPage, error) {
		if period <= 0 {
			return nil, &domain.InvalidArgumentError{Reason: "trailing period must be positive"}
		}
		ms := strconv.FormatInt(period.Milliseconds(), 10)
		v, err := s.get(ctx, request.ActivityPeriod, []string{ms}, nil)
		if err != nil {
			return nil, err
		}
		return decode.Activities(v)
	})
}

// ActivityHistoryRange fetches activity between two dates. Range sanity
// is the caller's job; the dates are only formatted.
func (s *Session) ActivityHistoryRange(ctx context.Context, from, to time.Time) (*domain.ActivityPage, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.ActivityPage, error) {
		params := []string{from.Format("02-01-2006"), to.Format("02-01-2006")}
		v, err := s.get(ctx, request.ActivityRange, params, nil)
		if err != nil {
			return nil, err
		}
		return decode.Activities(v)
	})
}

// Transactions fetches transaction history filtered by the optional
// parameter map.
func (s *Session) Transactions(ctx context.Context, params map[string]string) (*domain.TransactionPage, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.TransactionPage, error) {
		v, err := s.get(ctx, request.Transactions, nil, request.EncodeParams(params))
		if err != nil {
			return nil, err
		}
		return decode.Transactions(v)
	})
}

// Positions lists all open positions.
func (s *Session) Positions(ctx context.Context) ([]domain.OpenPosition, error) {
	return call(ctx, s, func(ctx context.Context) ([]domain.OpenPosition, error) {
		v, err := s.get(ctx, request.Positions, nil, nil)
		if err != nil {
			return nil, err
		}
		return decode.Positions(v)
	})
}

// Position fetches one open position by deal id.
func (s *Session) Position(ctx context.Context, dealID string) (*domain.OpenPosition, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.OpenPosition, error) {
		v, err := s.get(ctx, request.PositionByDealID, []string{dealID}, nil)
		if err != nil {
			return nil, err
		}
		return decode.Position(v)
	})
}

// MarketNavigation fetches the root of the market hierarchy.
func (s *Session) MarketNavigation(ctx context.Context) (*domain.RootNavigation, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.RootNavigation, error) {
		v, err := s.get(ctx, request.MarketNavigation, nil, nil)
		if err != nil {
			return nil, err
		}
		return decode.RootNavigation(v)
	})
}

// MarketNavigationNode fetches one node of the market hierarchy.
func (s *Session) MarketNavigationNode(ctx context.Context, nodeID string) (*domain.NodeNavigation, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.NodeNavigation, error) {
		v, err := s.get(ctx, request.MarketNavigationNode, []string{nodeID}, nil)
		if err != nil {
			return nil, err
		}
		return decode.NodeNavigation(v)
	})
}

// Market fetches the details of a single instrument.
func (s *Session) Market(ctx context.Context, epic string) (*domain.Market, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.Market, error) {
		v, err := s.get(ctx, request.MarketSingle, []string{epic}, nil)
		if err != nil {
			return nil, err
		}
		return decode.Market(v)
	})
}

// Markets fetches several instruments at once. An empty filter defaults
// to "ALL".
func (s *Session) Markets(ctx context.Context, epics []string, filter string) ([]domain.Market, error) {
	return call(ctx, s, func(ctx context.Context) ([]domain.Market, error) {
		if len(epics) == 0 {
			return nil, &domain.InvalidArgumentError{Reason: "at least one epic required"}
		}
		if filter == "" {
			filter = "ALL"
		}
		query := url.Values{}
		query.Set("filter", filter)
		v, err := s.get(ctx, request.MarketsMulti, []string{strings.Join(epics, ",")}, query)
		if err != nil {
			return nil, err
		}
		return decode.Markets(v)
	})
}

// Prices fetches the default price listing for an epic.
func (s *Session) Prices(ctx context.Context, epic string) (*domain.PriceList, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.PriceList, error) {
		v, err := s.get(ctx, request.PricesDefault, []string{epic}, nil)
		if err != nil {
			return nil, err
		}
		return decode.Prices(v)
	})
}

// PricesByCount fetches the last numPoints candles at the given
// resolution.
func (s *Session) PricesByCount(ctx context.Context, epic string, res domain.Resolution, numPoints int) (*domain.PriceList, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.PriceList, error) {
		if !res.Valid() {
			return nil, &domain.InvalidArgumentError{Reason: "unknown resolution " + string(res)}
		}
		if numPoints <= 0 {
			return nil, &domain.InvalidArgumentError{Reason: "numPoints must be positive"}
		}
		params := []string{epic, string(res), strconv.Itoa(numPoints)}
		v, err := s.get(ctx, request.PricesCount, params, nil)
		if err != nil {
			return nil, err
		}
		return decode.Prices(v)
	})
}

// PricesByRange fetches candles between two instants at the given
// resolution.
func (s *Session) PricesByRange(ctx context.Context, epic string, res domain.Resolution, from, to time.Time) (*domain.PriceList, error) {
	return call(ctx, s, func(ctx context.Context) (*domain.PriceList, error) {
		if !res.Valid() {
			return nil, &domain.InvalidArgumentError{Reason: "unknown resolution " + string(res)}
		}
		const layout = "2006-01-02 15:04:05"
		params := []string{epic, string(res), from.Format(layout), to.Format(layout)}
		v, err := s.get(ctx, request.PricesRange, params, nil)
		if err != nil {
			return nil, err
		}
		return decode.Prices(v)
	})
}
