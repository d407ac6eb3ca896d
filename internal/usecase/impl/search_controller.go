package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/usecase"
)

// searchSession debounces per-keystroke queries and fires a single upstream
// lookup once the query has been quiet for the configured interval. Results
// for a query that is no longer current are discarded.
type searchSession struct {
	mu      sync.Mutex
	timer   *time.Timer
	current string
	closed  bool

	debounce     time.Duration
	directLength int
	lookup       func(ctx context.Context, query string) ([]entity.Device, error)
	apply        func([]entity.Device)
	logger       *slog.Logger
}

func newSearchSession(
	debounce time.Duration,
	directLength int,
	lookup func(ctx context.Context, query string) ([]entity.Device, error),
	apply func([]entity.Device),
	logger *slog.Logger,
) *searchSession {
	return &searchSession{
		debounce:     debounce,
		directLength: directLength,
		lookup:       lookup,
		apply:        apply,
		logger:       logger,
	}
}

var _ usecase.SearchSession = (*searchSession)(nil)

func (s *searchSession) SetQuery(query string) string {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ""
	}

	s.current = query
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if query == "" {
		return ""
	}

	// A partial GPS ID only gets the hint. The lookup waits until the
	// query stops looking like an unfinished ID.
	if hint := searchHint(query, s.directLength); hint != "" {
		return hint
	}

	q := query
	s.timer = time.AfterFunc(s.debounce, func() { s.fire(q) })

	return ""
}

func (s *searchSession) fire(query string) {
	s.mu.Lock()
	if s.closed || s.current != query {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	devices, err := s.lookup(ctx, query)
	if err != nil {
		s.logger.Warn("search lookup failed", slog.String("query", query), slog.Any("error", err))
		return
	}

	s.mu.Lock()
	stale := s.closed || s.current != query
	s.mu.Unlock()
	if stale {
		return
	}

	s.apply(devices)
}

func (s *searchSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
