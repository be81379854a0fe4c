package service

import (
	"fundgraph/internal/domain"
	"fundgraph/internal/linkcache"
)

// ViewSelector holds the active "connect by" attribute. Selecting an attribute
// points the rendered edge list at that attribute's cache bucket.
type ViewSelector struct {
	cache    *linkcache.Cache
	reset    ResetFunc
	eventBus *EventBus
	active   *linkcache.Bucket
}

// NewViewSelector creates a selector with no attribute selected
func NewViewSelector(cache *linkcache.Cache, reset ResetFunc, eventBus *EventBus) *ViewSelector {
	return &ViewSelector{
		cache:    cache,
		reset:    reset,
		eventBus: eventBus,
	}
}

// SetActiveAttribute selects attr, deselecting any prior choice. It panics for
// attributes outside the tracked set; parse untrusted input with domain.ParseAttribute.
func (s *ViewSelector) SetActiveAttribute(attr domain.Attribute) {
	attr.MustValid()
	s.active = s.cache.Bucket(attr)

	s.reset.call()

	s.eventBus.Publish(Event{
		Type: EventViewChanged,
		Payload: ViewChangedPayload{
			Attribute: string(attr),
			LinkCount: s.active.Len(),
		},
	})
}

// Active returns the selected attribute; ok is false until one is chosen
func (s *ViewSelector) Active() (domain.Attribute, bool) {
	if s.active == nil {
		return "", false
	}
	return s.active.Attribute(), true
}

// Bucket returns the active bucket, or nil when nothing is selected
func (s *ViewSelector) Bucket() *linkcache.Bucket {
	return s.active
}

// Links returns the active edge list. It is empty until an attribute is selected.
func (s *ViewSelector) Links() []domain.Link {
	if s.active == nil {
		return []domain.Link{}
	}
	return s.active.Links()
}
