package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() Candidate {
	return Candidate{
		Name:    "Alpha",
		Manager: "Smith",
		Year:    "2001",
		Type:    string(FundTypeHedgeFund),
	}
}

func TestSchemaValidator(t *testing.T) {
	v := NewSchemaValidator()

	t.Run("valid candidate passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(validCandidate()))
	})

	t.Run("every fund type is accepted", func(t *testing.T) {
		for _, ft := range FundTypes() {
			c := validCandidate()
			c.Type = string(ft)
			assert.NoError(t, v.Validate(c), ft)
		}
	})

	t.Run("reports every violated field", func(t *testing.T) {
		err := v.Validate(Candidate{})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []FieldError{
			{Field: "name", Message: "Fund name is required"},
			{Field: "manager", Message: "Manager name is required"},
			{Field: "year", Message: "Launch year is required"},
			{Field: "type", Message: "Fund type is required"},
		}, verr.Fields)
	})

	tests := []struct {
		name    string
		mutate  func(c *Candidate)
		field   string
		message string
	}{
		{"missing name", func(c *Candidate) { c.Name = "" }, "name", "Fund name is required"},
		{"missing manager", func(c *Candidate) { c.Manager = "" }, "manager", "Manager name is required"},
		{"zero year", func(c *Candidate) { c.Year = "0" }, "year", "Launch year must be a positive integer"},
		{"negative year", func(c *Candidate) { c.Year = "-1999" }, "year", "Launch year must be a positive integer"},
		{"fractional year", func(c *Candidate) { c.Year = "2001.5" }, "year", "Launch year must be a positive integer"},
		{"text year", func(c *Candidate) { c.Year = "soon" }, "year", "Launch year must be a positive integer"},
		{"unknown type", func(c *Candidate) { c.Type = "Private Equity" }, "type", "Fund type must be one of Venture Capital, Real Estate, Hedge Fund"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			err := v.Validate(c)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)

			fe, ok := verr.Field(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.message, fe.Message)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "name", Message: "Fund name is required"},
		{Field: "year", Message: "Launch year is required"},
	}}

	assert.Equal(t, "validation failed: name: Fund name is required; year: Launch year is required", err.Error())

	_, ok := err.Field("type")
	assert.False(t, ok)
}
