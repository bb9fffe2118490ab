package shareurl

import (
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carstack/carcompare/internal/selection"
)

const (
	// ParamName is the well-known query parameter carrying the selection.
	ParamName = "cmp"

	// DefaultBasePath is the canonical path of a comparison link.
	DefaultBasePath = "/compare"

	// DefaultBatchWindow is how long mutations are coalesced before the
	// rewritten URL is published.
	DefaultBatchWindow = 150 * time.Millisecond
)

// Publisher receives the rewritten comparison URL after each batch window.
// It is the host environment's hook: a browser shell would rewrite the
// address bar, the CLI prints or stores the link.
type Publisher func(rawURL string)

// Synchronizer keeps a comparison URL in step with the selection store.
type Synchronizer struct {
	store    *selection.Store
	publish  Publisher
	basePath string
	window   time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithBasePath overrides the canonical base path of generated links.
func WithBasePath(path string) Option {
	return func(s *Synchronizer) {
		if path != "" {
			s.basePath = path
		}
	}
}

// WithBatchWindow overrides the rewrite coalescing window.
func WithBatchWindow(d time.Duration) Option {
	return func(s *Synchronizer) {
		if d > 0 {
			s.window = d
		}
	}
}

// New creates a synchronizer for the store. The publisher may be nil when
// only the pure encode/decode surface is needed.
func New(store *selection.Store, publish Publisher, logger *slog.Logger, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		store:    store,
		publish:  publish,
		basePath: DefaultBasePath,
		window:   DefaultBatchWindow,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enable subscribes to store mutations; each mutation schedules a publish
// after the batch window, and mutations inside the window coalesce into a
// single publish of the final state.
func (s *Synchronizer) Enable() {
	s.store.Subscribe(s.schedule)
}

// schedule arms or re-arms the batch timer.
func (s *Synchronizer) schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil {
		s.timer = time.AfterFunc(s.window, s.flush)
		return
	}
	s.timer.Reset(s.window)
}

// flush publishes the current comparison URL and disarms the timer.
func (s *Synchronizer) flush() {
	s.mu.Lock()
	s.timer = nil
	s.mu.Unlock()

	if s.publish == nil {
		return
	}
	u := s.ComparisonURL()
	s.logger.Debug("publishing comparison URL", "url", u)
	s.publish(u)
}

// Flush publishes immediately, canceling any pending batch window. The CLI
// uses it before process exit, where waiting out the window makes no sense.
func (s *Synchronizer) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if s.publish == nil {
		return
	}
	s.publish(s.ComparisonURL())
}

// ComparisonURL returns the canonical link for the current selection: the
// bare base path when nothing is selected, otherwise the base path with the
// encoded parameter appended.
func (s *Synchronizer) ComparisonURL() string {
	ids := s.store.IDs()
	if len(ids) == 0 {
		return s.basePath
	}
	return s.basePath + "?" + ParamName + "=" + EncodeIDs(ids)
}

// EncodeIDs joins identifiers into the parameter value, preserving order.
// UUIDs contain no characters needing percent-escaping, so the value is
// used verbatim.
func EncodeIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// DecodeURL extracts the selection identifiers from a full URL or a bare
// query string. A URL that cannot be parsed, or one without the parameter,
// yields nil; malformed tokens inside the parameter are dropped silently.
func DecodeURL(rawURL string) []string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	query := u.Query()
	if len(query[ParamName]) == 0 {
		// A bare query string like "cmp=a,b" parses as a path; retry as
		// query-only input.
		if values, qerr := url.ParseQuery(rawURL); qerr == nil {
			query = values
		}
	}
	return DecodeParam(query.Get(ParamName))
}

// DecodeParam validates a raw parameter value into identifiers: split on
// comma, keep UUID-shaped tokens, truncate to the selection capacity.
// Empty input yields nil.
func DecodeParam(value string) []string {
	if value == "" {
		return nil
	}

	ids := make([]string, 0, selection.MaxItems)
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if uuid.Validate(token) != nil {
			continue
		}
		if len(ids) == selection.MaxItems {
			break
		}
		ids = append(ids, token)
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

// HasComparisonInURL reports whether the parameter is present at all, even
// with an empty value. Presence, not content, is being tested: a link with
// "?cmp=" was shared from a comparison surface. An unparsable URL reports
// false.
func HasComparisonInURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Query().Has(ParamName) {
		return true
	}
	values, err := url.ParseQuery(rawURL)
	if err != nil {
		return false
	}
	return values.Has(ParamName)
}
