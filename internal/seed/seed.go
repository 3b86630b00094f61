// Package seed bundles the static fallback datasets for users and problems.
// The data is compiled into the binary and parsed lazily, once per process;
// callers receive fresh copies and may mutate them freely.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/civicwatch/civicwatch/internal/common"
	"github.com/civicwatch/civicwatch/internal/models"
)

//go:embed users.json problems.json
var data embed.FS

var (
	usersCache    []models.User
	problemsCache []models.Problem
)

// Users returns the bundled user roster.
func Users() ([]models.User, error) {
	if usersCache == nil {
		if err := load("users.json", &usersCache); err != nil {
			return nil, err
		}
	}
	out := make([]models.User, len(usersCache))
	copy(out, usersCache)
	return out, nil
}

// Problems returns the bundled problem dataset.
func Problems() ([]models.Problem, error) {
	if problemsCache == nil {
		if err := load("problems.json", &problemsCache); err != nil {
			return nil, err
		}
	}
	out := make([]models.Problem, len(problemsCache))
	copy(out, problemsCache)
	return out, nil
}

func load(name string, v any) error {
	b, err := data.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse seed %s: %w: %w", name, common.ErrMalformedPayload, err)
	}
	return nil
}
