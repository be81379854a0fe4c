package domain

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Link is a derived edge between two funds that agree on one attribute.
// Source is always the earlier fund and Target the one whose insertion produced the link.
type Link struct {
	ID        string    `json:"id" yaml:"id"`
	Source    string    `json:"source" yaml:"source"`
	Target    string    `json:"target" yaml:"target"`
	Label     string    `json:"label" yaml:"label"`
	Attribute Attribute `json:"attribute" yaml:"attribute"`
}

// NewLink connects an existing fund to a newly added one on attribute a.
// The label is the shared value.
func NewLink(a Attribute, existing, added Fund) Link {
	return Link{
		ID:        LinkID(a, existing.ID, added.ID),
		Source:    existing.ID,
		Target:    added.ID,
		Label:     Describe(a, existing),
		Attribute: a,
	}
}

// LinkID creates a deterministic ID for a link based on its endpoints and attribute
func LinkID(a Attribute, sourceID, targetID string) string {
	// Normalize endpoints for consistent ID
	from, to := sourceID, targetID
	if from > to {
		from, to = to, from
	}

	key := fmt.Sprintf("%s-%s-%s", from, to, a)
	sum := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}
