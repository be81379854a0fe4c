package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FundType is the investment category of a fund
type FundType string

const (
	FundTypeVentureCapital FundType = "Venture Capital"
	FundTypeRealEstate     FundType = "Real Estate"
	FundTypeHedgeFund      FundType = "Hedge Fund"
)

// FundTypes returns the accepted fund types in form order
func FundTypes() []FundType {
	return []FundType{FundTypeVentureCapital, FundTypeRealEstate, FundTypeHedgeFund}
}

// Valid reports whether t is an accepted fund type
func (t FundType) Valid() bool {
	switch t {
	case FundTypeVentureCapital, FundTypeRealEstate, FundTypeHedgeFund:
		return true
	}
	return false
}

// Fund is a validated fund record and a node of the similarity graph.
// Funds are never edited after creation.
type Fund struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Manager  string   `json:"manager" yaml:"manager"`
	Year     int      `json:"year" yaml:"year"`
	Type     FundType `json:"type" yaml:"type"`
	Open     bool     `json:"open" yaml:"open"`
	Position Position `json:"position" yaml:"position"`
}

// Status returns the display label of the fund's open/closed status
func (f Fund) Status() string {
	return StatusLabel(f.Open)
}

// Candidate is a raw fund form submission
type Candidate struct {
	Name    string    `json:"name" validate:"required"`
	Manager string    `json:"manager" validate:"required"`
	Year    YearInput `json:"year" validate:"required,posint"`
	Type    string    `json:"type" validate:"required,fundtype"`
	Open    *bool     `json:"open,omitempty"`
}

// IsOpen returns the submitted status, defaulting to open when the field was omitted
func (c Candidate) IsOpen() bool {
	if c.Open == nil {
		return true
	}
	return *c.Open
}

// YearInput holds the launch year as submitted. Forms send it either as a
// JSON number or as text, so both are accepted and checked during validation.
type YearInput string

// UnmarshalJSON accepts a number, a string, or null
func (y *YearInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*y = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = YearInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*y = YearInput(n.String())
	return nil
}

// MaxYear is the largest accepted launch year
const MaxYear = math.MaxInt32

// Int returns the year as a positive integer. ok is false for empty,
// non-numeric, fractional, non-positive, or out of range input.
func (y YearInput) Int() (int, bool) {
	s := strings.TrimSpace(string(y))
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 || n > MaxYear {
			return 0, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f <= 0 || f > MaxYear {
		return 0, false
	}
	return int(f), true
}

// YearOf is a convenience for tests and fixtures
func YearOf(year int) YearInput {
	return YearInput(strconv.Itoa(year))
}

// NewFund validates c and, on success, mints an immutable Fund with a fresh
// identifier and a jittered display position. Nothing is allocated on failure.
func NewFund(c Candidate, v Validator, ids IDGenerator, positions PositionGenerator) (Fund, error) {
	if err := v.Validate(c); err != nil {
		return Fund{}, err
	}

	year, _ := c.Year.Int()
	return Fund{
		ID:       ids.NextID(),
		Name:     c.Name,
		Manager:  c.Manager,
		Year:     year,
		Type:     FundType(c.Type),
		Open:     c.IsOpen(),
		Position: positions.NextPosition(),
	}, nil
}
