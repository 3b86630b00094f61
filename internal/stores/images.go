package stores

import (
	"context"

	"github.com/civicwatch/civicwatch/internal/logging"
	"github.com/civicwatch/civicwatch/internal/storage"
)

// KeyImages is the durable-store key holding the aggregate image mapping,
// problem id -> data-URL payload, persisted as a whole on every change.
const KeyImages = "civicwatch_images"

// Images owns the stored-image mapping. Payloads are self-describing
// data-URL strings produced by the imagex package; ids are expected to be
// the owning problem's id.
type Images struct {
	store *storage.Store
	log   logging.Logger

	images map[string]string
}

// NewImages wires an image store and hydrates it from durable storage.
func NewImages(ctx context.Context, store *storage.Store, log logging.Logger) *Images {
	if log == nil {
		log = logging.NewNopLogger()
	}
	i := &Images{store: store, log: log, images: make(map[string]string)}
	store.Read(ctx, KeyImages, &i.images)
	return i
}

// Save stores a payload under id and re-persists the whole mapping.
// Returns false for an empty id or when the durable write fails (the
// in-memory mapping keeps the payload either way).
func (i *Images) Save(ctx context.Context, id, payload string) bool {
	if id == "" {
		return false
	}
	i.images[id] = payload
	if !i.store.Write(ctx, KeyImages, i.images) {
		i.log.Warn(ctx, "images not persisted, in-memory state kept", "id", id)
		return false
	}
	return true
}

// Get returns the payload stored under id, "" when absent.
func (i *Images) Get(id string) string { return i.images[id] }

// All returns a copy of the whole mapping.
func (i *Images) All() map[string]string {
	out := make(map[string]string, len(i.images))
	for k, v := range i.images {
		out[k] = v
	}
	return out
}

// Delete removes one entry and re-persists the mapping. Returns false when
// the id is empty or absent.
func (i *Images) Delete(ctx context.Context, id string) bool {
	if id == "" {
		return false
	}
	if _, ok := i.images[id]; !ok {
		return false
	}
	delete(i.images, id)
	if !i.store.Write(ctx, KeyImages, i.images) {
		i.log.Warn(ctx, "images not persisted after delete", "id", id)
		return false
	}
	return true
}
