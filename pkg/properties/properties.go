// Package properties loads an optional JSON cluster-descriptor file and
// merges a handful of deployment-wide overrides on top of the
// environment-variable defaults read by config.NewProvider. This mirrors
// the two-stage resolution (cluster descriptor, then per-service property
// file) used by the original implementation's configuration reader,
// reduced to a single flat JSON document since Doka's Go services don't
// need a templating layer on top of it.
package properties

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/doka-one/doka/config"
)

// Overrides is the shape of the optional cluster-descriptor JSON file. Any
// zero-valued field is left untouched in the base configuration.
type Overrides struct {
	KeyManagerBaseURL     string `json:"km_base_url"`
	SessionManagerBaseURL string `json:"sm_base_url"`
	DocumentServerBaseURL string `json:"ds_base_url"`
	TikaBaseURL           string `json:"tika_base_url"`
	BannedCountries       []string `json:"banned_countries"`
}

// Load reads path (if it exists) and applies its overrides onto cfg. A
// missing file is not an error — the cluster descriptor is optional.
func Load(path string, cfg *config.Configuration) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("properties: read %s: %w", path, err)
	}

	var o Overrides
	if err := json.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("properties: parse %s: %w", path, err)
	}

	if o.KeyManagerBaseURL != "" {
		cfg.Peers.KeyManagerBaseURL = o.KeyManagerBaseURL
	}
	if o.SessionManagerBaseURL != "" {
		cfg.Peers.SessionManagerBaseURL = o.SessionManagerBaseURL
	}
	if o.DocumentServerBaseURL != "" {
		cfg.Peers.DocumentServerBaseURL = o.DocumentServerBaseURL
	}
	if o.TikaBaseURL != "" {
		cfg.Peers.TikaBaseURL = o.TikaBaseURL
	}
	if len(o.BannedCountries) > 0 {
		cfg.App.BannedCountries = o.BannedCountries
	}

	return nil
}
