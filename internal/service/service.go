package service

import (
	"sync"

	"fundgraph/internal/domain"
)

// Session is the per-process fund graph: a builder and a view selector over a
// shared link cache. Every operation runs to completion under one lock, so
// concurrent HTTP requests see the same serialized event order a single UI
// event loop would.
type Session struct {
	mu       sync.Mutex
	builder  *GraphBuilder
	selector *ViewSelector
	render   domain.RenderConfig
}

// NewSession creates a session. builder and selector must share the same cache.
func NewSession(builder *GraphBuilder, selector *ViewSelector, render domain.RenderConfig) *Session {
	return &Session{
		builder:  builder,
		selector: selector,
		render:   render,
	}
}

// AddFund submits a candidate fund, see GraphBuilder.AddFund
func (s *Session) AddFund(c domain.Candidate) (domain.Fund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builder.AddFund(c)
}

// SetActiveAttribute switches the connecting attribute, see ViewSelector.SetActiveAttribute
func (s *Session) SetActiveAttribute(attr domain.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selector.SetActiveAttribute(attr)
}

// ActiveAttribute returns the selected attribute, if any
func (s *Session) ActiveAttribute() (domain.Attribute, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector.Active()
}

// Snapshot returns the current nodes and active links by reference
func (s *Session) Snapshot() domain.GraphSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SelectView switches the connecting attribute and returns the snapshot
// taken under the same lock, so no submission can land in between
func (s *Session) SelectView(attr domain.Attribute) domain.GraphSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selector.SetActiveAttribute(attr)
	return s.snapshot()
}

func (s *Session) snapshot() domain.GraphSnapshot {
	attr, _ := s.selector.Active()
	return domain.GraphSnapshot{
		Nodes:     s.builder.Nodes(),
		Links:     s.selector.Links(),
		Attribute: attr,
		Config:    s.render,
	}
}

// Nodes returns every accepted fund in insertion order
func (s *Session) Nodes() []domain.Fund {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builder.Nodes()
}

// Links returns the cached links for attr regardless of the active selection
func (s *Session) Links(attr domain.Attribute) []domain.Link {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builder.Cache().Bucket(attr).Links()
}

// Stats summarizes node and link counts
func (s *Session) Stats() domain.GraphStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	attr, _ := s.selector.Active()
	return domain.GraphStats{
		NodeCount:  len(s.builder.Nodes()),
		LinkCounts: s.builder.Cache().Counts(),
		Active:     attr,
	}
}

// Export returns every node and every attribute's links
func (s *Session) Export() *domain.GraphExport {
	s.mu.Lock()
	defer s.mu.Unlock()

	attr, _ := s.selector.Active()
	return &domain.GraphExport{
		Nodes:  s.builder.Nodes(),
		Links:  s.builder.Cache().All(),
		Active: attr,
	}
}
