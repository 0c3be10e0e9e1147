// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
)

//go:embed data/*.json
var defaultData embed.FS

const (
	towersFile   = "towers.json"
	demonsFile   = "demons.json"
	passivesFile = "passives.json"
)

var (
	// ErrEmptyCatalog is returned when a catalog section has no entries.
	ErrEmptyCatalog = errors.New("empty catalog")
	// ErrInvalidCatalog is returned when a catalog entry fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Catalog - все неизменяемые таблицы игры: башни, демоны, пассивки.
type Catalog struct {
	Towers   []TowerSpec
	Demons   []DemonArchetype
	Passives []Passive
}

// DefaultCatalog loads the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return loadCatalog(sub)
}

// LoadCatalog reads towers.json, demons.json and passives.json from dir.
func LoadCatalog(dir string) (*Catalog, error) {
	return loadCatalog(os.DirFS(dir))
}

func loadCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{}
	if err := readJSON(fsys, towersFile, &c.Towers); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, demonsFile, &c.Demons); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, passivesFile, &c.Passives); err != nil {
		return nil, err
	}
	log.Printf("Loaded %d tower, %d demon and %d passive definitions", len(c.Towers), len(c.Demons), len(c.Passives))
	return c, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// Validate rejects catalogs the simulation cannot run with. shopSize and
// passiveOffer are the number of distinct towers and passives drawn per offer.
func (c *Catalog) Validate(shopSize, passiveOffer int) error {
	if len(c.Towers) == 0 {
		return fmt.Errorf("towers: %w", ErrEmptyCatalog)
	}
	if len(c.Demons) == 0 {
		return fmt.Errorf("demons: %w", ErrEmptyCatalog)
	}
	if len(c.Passives) == 0 {
		return fmt.Errorf("passives: %w", ErrEmptyCatalog)
	}
	if len(c.Towers) < shopSize {
		return fmt.Errorf("%w: %d towers cannot fill a shop of %d", ErrInvalidCatalog, len(c.Towers), shopSize)
	}
	if len(c.Passives) < passiveOffer {
		return fmt.Errorf("%w: %d passives cannot fill an offer of %d", ErrInvalidCatalog, len(c.Passives), passiveOffer)
	}

	ids := make(map[string]bool)
	for _, t := range c.Towers {
		if t.ID == "" || ids[t.ID] {
			return fmt.Errorf("%w: tower id %q missing or duplicated", ErrInvalidCatalog, t.ID)
		}
		ids[t.ID] = true
		if t.Range <= 0 || t.Damage <= 0 || t.AttackRate <= 0 {
			return fmt.Errorf("%w: tower %s needs positive range, damage and attack rate", ErrInvalidCatalog, t.ID)
		}
		if !t.Design.Known() {
			return fmt.Errorf("%w: tower %s has unknown design %q", ErrInvalidCatalog, t.ID, t.Design)
		}
		if t.IsHybrid() && len(t.Hybrid) != 2 {
			return fmt.Errorf("%w: hybrid tower %s needs exactly two elements", ErrInvalidCatalog, t.ID)
		}
		for _, e := range t.Hybrid {
			if !e.Known() {
				return fmt.Errorf("%w: tower %s has unknown element %q", ErrInvalidCatalog, t.ID, e)
			}
		}
	}

	prev := 0.0
	for i, d := range c.Demons {
		if d.Threshold <= prev || d.Threshold > 1 {
			return fmt.Errorf("%w: demon %s threshold %.2f must increase within (0,1]", ErrInvalidCatalog, d.ID, d.Threshold)
		}
		if d.HealthMult <= 0 || d.SpeedMult <= 0 {
			return fmt.Errorf("%w: demon %s needs positive multipliers", ErrInvalidCatalog, d.ID)
		}
		if !d.Element.Known() || !d.Weakness.Known() {
			return fmt.Errorf("%w: demon %s has unknown element or weakness", ErrInvalidCatalog, d.ID)
		}
		prev = d.Threshold
		if i == len(c.Demons)-1 && math.Abs(d.Threshold-1) > 1e-9 {
			return fmt.Errorf("%w: last demon threshold is %.2f, want 1.0", ErrInvalidCatalog, d.Threshold)
		}
	}

	pids := make(map[string]bool)
	for _, p := range c.Passives {
		if p.ID == "" || pids[p.ID] {
			return fmt.Errorf("%w: passive id %q missing or duplicated", ErrInvalidCatalog, p.ID)
		}
		pids[p.ID] = true
		if !knownKinds[p.Kind] {
			return fmt.Errorf("%w: passive %s has unknown kind %q", ErrInvalidCatalog, p.ID, p.Kind)
		}
		if p.Step <= 0 {
			return fmt.Errorf("%w: passive %s needs a positive step", ErrInvalidCatalog, p.ID)
		}
	}
	return nil
}

// Tower returns the spec with the given id.
func (c *Catalog) Tower(id string) (TowerSpec, bool) {
	for _, t := range c.Towers {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return TowerSpec{}, false
}

// Passive returns the passive with the given id.
func (c *Catalog) Passive(id string) (Passive, bool) {
	for _, p := range c.Passives {
		if p.ID == id {
			return p, true
		}
	}
	return Passive{}, false
}

// DemonFor maps a uniform draw r in [0,1) to its archetype bin.
func (c *Catalog) DemonFor(r float64) DemonArchetype {
	for _, d := range c.Demons {
		if r < d.Threshold {
			return d
		}
	}
	return c.Demons[len(c.Demons)-1]
}
