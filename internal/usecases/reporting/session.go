package reporting

import (
	"sync"

	"github.com/vfg2006/search-insights-api/internal/domain"
)

// Session is the single-user in-memory cache of the last successful
// fetch. Each load overwrites it wholesale; there is no merge path. The
// mutex only guards against racing HTTP handlers, there is exactly one
// logical writer.
type Session struct {
	mu     sync.Mutex
	report *domain.KeywordReport
}

func NewSession() *Session {
	return &Session{}
}

// Store replaces the last report.
func (s *Session) Store(report *domain.KeywordReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = report
}

// Last returns the last stored report, or nil before the first load.
func (s *Session) Last() *domain.KeywordReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}
