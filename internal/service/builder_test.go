package service

import (
	"testing"

	"fundgraph/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphBuilderAddFund(t *testing.T) {
	t.Run("appends fund and records links", func(t *testing.T) {
		f := newFixture(t)

		a, err := f.builder.AddFund(candidate("A", "Smith", 2001, domain.FundTypeHedgeFund, true))
		require.NoError(t, err)
		b, err := f.builder.AddFund(candidate("B", "Smith", 2010, domain.FundTypeRealEstate, true))
		require.NoError(t, err)

		assert.Equal(t, "fund-1", a.ID)
		assert.Equal(t, "fund-2", b.ID)
		assert.Equal(t, []domain.Fund{a, b}, f.builder.Nodes())

		manager := f.cache.Bucket(domain.AttributeManager).Links()
		require.Len(t, manager, 1)
		assert.Equal(t, domain.Link{
			ID:        domain.LinkID(domain.AttributeManager, a.ID, b.ID),
			Source:    a.ID,
			Target:    b.ID,
			Label:     "Smith",
			Attribute: domain.AttributeManager,
		}, manager[0])

		assert.Empty(t, f.cache.Bucket(domain.AttributeYear).Links())
		assert.Empty(t, f.cache.Bucket(domain.AttributeType).Links())

		status := f.cache.Bucket(domain.AttributeStatus).Links()
		require.Len(t, status, 1)
		assert.Equal(t, "Open", status[0].Label)
	})

	t.Run("first fund records no links", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.builder.AddFund(candidate("A", "Smith", 2001, domain.FundTypeHedgeFund, true))
		require.NoError(t, err)

		for _, attr := range domain.Attributes() {
			assert.Empty(t, f.cache.Bucket(attr).Links(), attr)
		}
	})

	t.Run("resets form on success", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.builder.AddFund(candidate("A", "Smith", 2001, domain.FundTypeHedgeFund, true))
		require.NoError(t, err)
		assert.Equal(t, 1, f.resets.calls)
	})

	t.Run("publishes fund_added", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.builder.AddFund(candidate("A", "Smith", 2001, domain.FundTypeHedgeFund, true))
		require.NoError(t, err)
		_, err = f.builder.AddFund(candidate("B", "Smith", 2001, domain.FundTypeHedgeFund, true))
		require.NoError(t, err)

		events := drain(f.events)
		require.Len(t, events, 2)
		assert.Equal(t, EventFundAdded, events[1].Type)
		assert.Equal(t, FundAddedPayload{FundID: "fund-2", NodeCount: 2, LinksAdded: 4}, events[1].Payload)
	})

	t.Run("nil reset and bus are tolerated", func(t *testing.T) {
		f := newFixture(t)
		builder := NewGraphBuilder(f.cache, domain.NewSchemaValidator(),
			Generators{IDs: domain.NewCounterIDs("x"), Positions: fixedPositions{}}, nil, nil, nil)
		_, err := builder.AddFund(candidate("A", "Smith", 2001, domain.FundTypeHedgeFund, true))
		assert.NoError(t, err)
	})
}

func TestGraphBuilderRejectsInvalid(t *testing.T) {
	f := newFixture(t)
	_, err := f.builder.AddFund(candidate("A", "Smith", 2001, domain.FundTypeHedgeFund, true))
	require.NoError(t, err)
	resetsBefore := f.resets.calls
	drain(f.events)

	bad := candidate("", "Smith", 2001, domain.FundTypeHedgeFund, true)
	_, err = f.builder.AddFund(bad)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields)
	_, ok := verr.Field("name")
	assert.True(t, ok)

	assert.Len(t, f.builder.Nodes(), 1)
	for _, attr := range domain.Attributes() {
		assert.Empty(t, f.cache.Bucket(attr).Links(), attr)
	}
	assert.Equal(t, resetsBefore, f.resets.calls, "reset must not run on failure")
	assert.Empty(t, drain(f.events))

	t.Run("failure does not consume an identifier", func(t *testing.T) {
		fund, err := f.builder.AddFund(candidate("B", "Jones", 2002, domain.FundTypeRealEstate, false))
		require.NoError(t, err)
		assert.Equal(t, "fund-2", fund.ID)
	})
}

func TestGraphBuilderNodesAliasing(t *testing.T) {
	f := newFixture(t)
	_, err := f.builder.AddFund(candidate("A", "Smith", 2001, domain.FundTypeHedgeFund, true))
	require.NoError(t, err)

	nodes := f.builder.Nodes()
	assert.Equal(t, len(nodes), cap(nodes))

	_, err = f.builder.AddFund(candidate("B", "Jones", 2002, domain.FundTypeRealEstate, true))
	require.NoError(t, err)

	assert.Len(t, nodes, 1, "earlier snapshot keeps its length")
	assert.Len(t, f.builder.Nodes(), 2)
}

func TestGraphBuilderAcceptsDuplicateFunds(t *testing.T) {
	f := newFixture(t)

	c := candidate("Same", "Doe", 2015, domain.FundTypeVentureCapital, false)
	a, err := f.builder.AddFund(c)
	require.NoError(t, err)
	b, err := f.builder.AddFund(c)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	for _, attr := range domain.Attributes() {
		links := f.cache.Bucket(attr).Links()
		require.Len(t, links, 1, "attribute %s", attr)
		assert.Equal(t, a.ID, links[0].Source)
		assert.Equal(t, b.ID, links[0].Target)
	}
	assert.Equal(t, "Closed", f.cache.Bucket(domain.AttributeStatus).Links()[0].Label)
}
