// Package linkcache maintains, for every tracked attribute, the list of links
// between funds that share that attribute's value.
//
// The cache is append-only. Each insertion compares the new fund against every
// existing fund on all four attributes once, so switching the active attribute
// later never recomputes anything.
package linkcache

import (
	"fundgraph/internal/domain"
)

// Bucket holds the links discovered so far for one attribute, in discovery order
type Bucket struct {
	attr  domain.Attribute
	links []domain.Link
}

// Attribute returns the attribute this bucket tracks
func (b *Bucket) Attribute() domain.Attribute {
	return b.attr
}

// Links returns the bucket contents without copying. The capacity is clamped
// so appending to the result never writes into cache storage.
func (b *Bucket) Links() []domain.Link {
	return b.links[:len(b.links):len(b.links)]
}

// Len returns the number of links in the bucket
func (b *Bucket) Len() int {
	return len(b.links)
}

// Cache is the per-attribute store of candidate links. It is not safe for
// concurrent use; callers serialize writes.
type Cache struct {
	buckets [domain.AttributeCount]*Bucket
}

// New creates an empty cache with one bucket per attribute
func New() *Cache {
	c := &Cache{}
	for _, attr := range domain.Attributes() {
		c.buckets[attr.Index()] = &Bucket{attr: attr, links: make([]domain.Link, 0)}
	}
	return c
}

// RecordLinks appends, for each attribute, one link from every existing fund
// that shares added's value. existing must not contain added. Call exactly
// once per accepted fund.
func (c *Cache) RecordLinks(added domain.Fund, existing []domain.Fund) {
	for _, bucket := range c.buckets {
		for _, e := range existing {
			if domain.Matches(bucket.attr, e, added) {
				bucket.links = append(bucket.links, domain.NewLink(bucket.attr, e, added))
			}
		}
	}
}

// Bucket returns the stable bucket for attr. It panics for attributes outside the tracked set.
func (c *Cache) Bucket(attr domain.Attribute) *Bucket {
	return c.buckets[attr.Index()]
}

// Counts returns the number of links per attribute
func (c *Cache) Counts() map[domain.Attribute]int {
	counts := make(map[domain.Attribute]int, len(c.buckets))
	for _, b := range c.buckets {
		counts[b.attr] = len(b.links)
	}
	return counts
}

// All returns every bucket's links keyed by attribute, without copying
func (c *Cache) All() map[domain.Attribute][]domain.Link {
	all := make(map[domain.Attribute][]domain.Link, len(c.buckets))
	for _, b := range c.buckets {
		all[b.attr] = b.Links()
	}
	return all
}
