// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Profile is one curated business-model archetype. IdealTraits uses the same
// trait keys as the normalizer output, every value in [0,1]. Profiles are
// configuration data: loaded once at startup and never mutated.
type Profile struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Difficulty         string             `json:"difficulty"`   // beginner | intermediate | advanced
	TimeToProfit       string             `json:"timeToProfit"` // e.g. "1-3 months"
	StartupCost        string             `json:"startupCost"`
	PotentialIncome    string             `json:"potentialIncome"`
	Skills             []string           `json:"skills"`
	BestFitPersonality string             `json:"bestFitPersonality"`
	IdealTraits        map[string]float64 `json:"idealTraits"`
}

// Catalog is the ordered set of archetypes. Slice order is load order and
// defines tie-break order for equal fit scores.
type Catalog struct {
	Version  string    `json:"version"`
	Profiles []Profile `json:"profiles"`
}

// Load reads a catalog from a JSON file and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks structural invariants: non-empty, unique ids, named
// profiles, ideal trait values inside [0,1].
func (c *Catalog) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("catalog has no profiles")
	}
	seen := make(map[string]bool, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.ID == "" {
			return fmt.Errorf("profile %d: missing id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("profile %q: duplicate id", p.ID)
		}
		seen[p.ID] = true
		if p.Name == "" {
			return fmt.Errorf("profile %q: missing name", p.ID)
		}
		for trait, v := range p.IdealTraits {
			if v < 0 || v > 1 {
				return fmt.Errorf("profile %q: trait %q value %v out of [0,1]", p.ID, trait, v)
			}
		}
	}
	return nil
}

// ByID returns the profile with the given id, or nil if the catalog does not
// contain it.
func (c *Catalog) ByID(id string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].ID == id {
			return &c.Profiles[i]
		}
	}
	return nil
}
