package service

import (
	"testing"

	"fundgraph/internal/domain"
	"fundgraph/internal/linkcache"
)

type fixedPositions struct{}

func (fixedPositions) NextPosition() domain.Position { return domain.Position{X: 400, Y: 200} }

// resetCounter counts form reset invocations
type resetCounter struct{ calls int }

func (r *resetCounter) reset() { r.calls++ }

type fixture struct {
	cache    *linkcache.Cache
	builder  *GraphBuilder
	selector *ViewSelector
	session  *Session
	resets   *resetCounter
	events   chan Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cache := linkcache.New()
	resets := &resetCounter{}
	bus := NewEventBus()
	events := make(chan Event, 64)
	bus.Subscribe(events)

	gen := Generators{IDs: domain.NewCounterIDs("fund"), Positions: fixedPositions{}}
	builder := NewGraphBuilder(cache, domain.NewSchemaValidator(), gen, resets.reset, bus, nil)
	selector := NewViewSelector(cache, resets.reset, bus)

	return &fixture{
		cache:    cache,
		builder:  builder,
		selector: selector,
		session:  NewSession(builder, selector, domain.DefaultRenderConfig()),
		resets:   resets,
		events:   events,
	}
}

func candidate(name, manager string, year int, ft domain.FundType, open bool) domain.Candidate {
	return domain.Candidate{
		Name:    name,
		Manager: manager,
		Year:    domain.YearOf(year),
		Type:    string(ft),
		Open:    &open,
	}
}

func drain(ch chan Event) []Event {
	var out []Event
	for {
		select {
		case e := <-ch:
			out = append(out, e)
		default:
			return out
		}
	}
}
