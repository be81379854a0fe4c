package service

import (
	"errors"

	"fundgraph/internal/domain"
	"fundgraph/internal/linkcache"

	"go.uber.org/zap"
)

// ResetFunc clears transient form state owned by the UI. It must be idempotent.
type ResetFunc func()

func (r ResetFunc) call() {
	if r != nil {
		r()
	}
}

// Generators supplies identifiers and display positions for new funds
type Generators struct {
	IDs       domain.IDGenerator
	Positions domain.PositionGenerator
}

// GraphBuilder accepts fund submissions, grows the node collection and keeps the link cache current
type GraphBuilder struct {
	cache     *linkcache.Cache
	validator domain.Validator
	gen       Generators
	reset     ResetFunc
	eventBus  *EventBus
	logger    *zap.Logger
	nodes     []domain.Fund
}

// NewGraphBuilder creates a graph builder writing into cache
func NewGraphBuilder(cache *linkcache.Cache, validator domain.Validator, gen Generators, reset ResetFunc, eventBus *EventBus, logger *zap.Logger) *GraphBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraphBuilder{
		cache:     cache,
		validator: validator,
		gen:       gen,
		reset:     reset,
		eventBus:  eventBus,
		logger:    logger,
		nodes:     make([]domain.Fund, 0),
	}
}

// AddFund validates c and, on success, appends the new fund and records its
// links against every prior fund. On failure nothing changes and the
// *domain.ValidationError is returned.
func (b *GraphBuilder) AddFund(c domain.Candidate) (domain.Fund, error) {
	fund, err := domain.NewFund(c, b.validator, b.gen.IDs, b.gen.Positions)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			b.logger.Debug("fund rejected", zap.Int("violations", len(verr.Fields)), zap.Error(err))
		}
		return domain.Fund{}, err
	}

	before := b.linkTotal()
	prior := b.nodes
	b.nodes = append(b.nodes, fund)
	b.cache.RecordLinks(fund, prior)
	added := b.linkTotal() - before

	b.reset.call()

	b.logger.Info("fund added",
		zap.String("fund_id", fund.ID),
		zap.String("manager", fund.Manager),
		zap.Int("year", fund.Year),
		zap.Int("nodes", len(b.nodes)),
		zap.Int("links_added", added),
	)

	b.eventBus.Publish(Event{
		Type: EventFundAdded,
		Payload: FundAddedPayload{
			FundID:     fund.ID,
			NodeCount:  len(b.nodes),
			LinksAdded: added,
		},
	})

	return fund, nil
}

// Nodes returns every accepted fund in insertion order. The slice aliases builder storage.
func (b *GraphBuilder) Nodes() []domain.Fund {
	return b.nodes[:len(b.nodes):len(b.nodes)]
}

// Cache returns the link cache the builder writes into
func (b *GraphBuilder) Cache() *linkcache.Cache {
	return b.cache
}

func (b *GraphBuilder) linkTotal() int {
	total := 0
	for _, n := range b.cache.Counts() {
		total += n
	}
	return total
}
