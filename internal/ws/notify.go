package ws

import (
	"encoding/json"
	"time"
)

const EventCatalogueUpdated = "catalogue_updated"

type CatalogueUpdatedEvent struct {
	Type      string `json:"type"`
	Version   int64  `json:"version"`
	Timestamp string `json:"timestamp"`
}

// NotifyCatalogueUpdated tells subscribers to refetch the catalogue.
func (h *Hub) NotifyCatalogueUpdated(version int64) {
	if h == nil {
		return
	}
	evt := CatalogueUpdatedEvent{
		Type:      EventCatalogueUpdated,
		Version:   version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
