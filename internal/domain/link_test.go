package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLink(t *testing.T) {
	a := Fund{ID: "fund-1", Manager: "Smith", Year: 2001, Type: FundTypeHedgeFund, Open: true}
	b := Fund{ID: "fund-2", Manager: "Smith", Year: 2010, Type: FundTypeRealEstate, Open: true}

	link := NewLink(AttributeManager, a, b)

	assert.Equal(t, "fund-1", link.Source)
	assert.Equal(t, "fund-2", link.Target)
	assert.Equal(t, "Smith", link.Label)
	assert.Equal(t, AttributeManager, link.Attribute)
	assert.Equal(t, LinkID(AttributeManager, "fund-1", "fund-2"), link.ID)

	t.Run("status label is Open or Closed", func(t *testing.T) {
		assert.Equal(t, "Open", NewLink(AttributeStatus, a, b).Label)
	})
}

func TestLinkID(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, LinkID(AttributeYear, "a", "b"), LinkID(AttributeYear, "a", "b"))
	})

	t.Run("normalizes endpoints", func(t *testing.T) {
		assert.Equal(t, LinkID(AttributeYear, "a", "b"), LinkID(AttributeYear, "b", "a"))
	})

	t.Run("different attributes generate different IDs", func(t *testing.T) {
		assert.NotEqual(t, LinkID(AttributeYear, "a", "b"), LinkID(AttributeType, "a", "b"))
	})

	t.Run("generates short hash", func(t *testing.T) {
		// 8 bytes hex encoded
		assert.Len(t, LinkID(AttributeManager, "a", "b"), 16)
	})
}
