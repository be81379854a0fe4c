package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute is a comparable fund field used to connect funds
type Attribute string

const (
	AttributeManager Attribute = "manager"
	AttributeYear    Attribute = "year"
	AttributeType    Attribute = "type"
	AttributeStatus  Attribute = "status"
)

// AttributeCount is the number of tracked attributes
const AttributeCount = 4

// Attributes returns every tracked attribute in bucket order
func Attributes() []Attribute {
	return []Attribute{AttributeManager, AttributeYear, AttributeType, AttributeStatus}
}

// ParseAttribute converts untrusted input (query strings, request bodies) into an Attribute
func ParseAttribute(s string) (Attribute, error) {
	attr := Attribute(strings.ToLower(strings.TrimSpace(s)))
	if !attr.Valid() {
		return "", fmt.Errorf("unknown attribute %q, must be one of manager, year, type, status", s)
	}
	return attr, nil
}

// Valid reports whether a is one of the tracked attributes
func (a Attribute) Valid() bool {
	switch a {
	case AttributeManager, AttributeYear, AttributeType, AttributeStatus:
		return true
	}
	return false
}

// Index returns the bucket position of a. It panics for attributes outside the set.
func (a Attribute) Index() int {
	switch a {
	case AttributeManager:
		return 0
	case AttributeYear:
		return 1
	case AttributeType:
		return 2
	case AttributeStatus:
		return 3
	}
	panic(fmt.Sprintf("domain: invalid attribute %q", string(a)))
}

// MustValid panics if a is not a tracked attribute
func (a Attribute) MustValid() {
	if !a.Valid() {
		panic(fmt.Sprintf("domain: invalid attribute %q", string(a)))
	}
}

// Matches reports whether x and y share the value of attribute a
func Matches(a Attribute, x, y Fund) bool {
	switch a {
	case AttributeManager:
		return x.Manager == y.Manager
	case AttributeYear:
		return x.Year == y.Year
	case AttributeType:
		return x.Type == y.Type
	case AttributeStatus:
		return x.Open == y.Open
	}
	panic(fmt.Sprintf("domain: invalid attribute %q", string(a)))
}

// Describe renders the value of attribute a on fund f as link label text
func Describe(a Attribute, f Fund) string {
	switch a {
	case AttributeManager:
		return f.Manager
	case AttributeYear:
		return strconv.Itoa(f.Year)
	case AttributeType:
		return string(f.Type)
	case AttributeStatus:
		return StatusLabel(f.Open)
	}
	panic(fmt.Sprintf("domain: invalid attribute %q", string(a)))
}

// StatusLabel renders open/closed status for display
func StatusLabel(open bool) string {
	if open {
		return "Open"
	}
	return "Closed"
}
