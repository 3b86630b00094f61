// Package cookiejar persists named cookie records through the key/value
// substrate, standing in for the browser's cookie store. Records keep the
// attribute surface of the original cookies (expiry horizon, path,
// SameSite) even though no HTTP layer consumes them here.
package cookiejar

import (
	"context"
	"time"

	"github.com/civicwatch/civicwatch/internal/logging"
	"github.com/civicwatch/civicwatch/internal/storage"
)

const keyPrefix = "cookie:"

// SameSiteStrict restricts cross-site sending. It is the only mode the
// session cookie uses.
const SameSiteStrict = "Strict"

type record struct {
	Value    string    `json:"value"`
	Expires  time.Time `json:"expires"`
	Path     string    `json:"path"`
	SameSite string    `json:"sameSite"`
}

// Jar reads and writes cookie records. Expired entries behave as absent.
type Jar struct {
	store *storage.Store
	now   func() time.Time
	log   logging.Logger
}

// NewJar returns a Jar over the given store. A nil clock defaults to
// time.Now.
func NewJar(store *storage.Store, now func() time.Time, log logging.Logger) *Jar {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Jar{store: store, now: now, log: log}
}

// Set stores value under name with an expiry horizon of days, path root,
// SameSite=Strict. Reports whether the record was made durable.
func (j *Jar) Set(ctx context.Context, name, value string, days int) bool {
	rec := record{
		Value:    value,
		Expires:  j.now().Add(time.Duration(days) * 24 * time.Hour),
		Path:     "/",
		SameSite: SameSiteStrict,
	}
	ok := j.store.Write(ctx, keyPrefix+name, rec)
	if !ok {
		j.log.Warn(ctx, "failed to set cookie", "name", name)
	}
	return ok
}

// Get returns the value stored under name, or "" when the cookie is absent
// or past its expiry. Expired records are cleaned up on read.
func (j *Jar) Get(ctx context.Context, name string) string {
	var rec record
	if !j.store.Read(ctx, keyPrefix+name, &rec) {
		return ""
	}
	if !rec.Expires.After(j.now()) {
		j.store.Remove(ctx, keyPrefix+name)
		return ""
	}
	return rec.Value
}

// Delete removes the cookie named name. Deleting an absent cookie succeeds.
func (j *Jar) Delete(ctx context.Context, name string) bool {
	return j.store.Remove(ctx, keyPrefix+name)
}
