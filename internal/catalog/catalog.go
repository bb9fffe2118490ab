package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carstack/carcompare/internal/model"
)

// ErrCatalogNotFound is returned when the catalog file does not exist.
var ErrCatalogNotFound = errors.New("catalog file not found")

// file mirrors the on-disk YAML structure.
type file struct {
	Vehicles []*model.Vehicle `yaml:"vehicles"`
}

// Catalog is an in-memory, identifier-indexed vehicle catalog.
type Catalog struct {
	vehicles []*model.Vehicle
	byID     map[string]*model.Vehicle
}

// Load reads a YAML catalog file. Entries that are not structurally
// well-formed vehicles are dropped with a warning; a file that parses but
// contains no usable vehicles yields an empty catalog, not an error.
func Load(path string, logger *slog.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided catalog path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCatalogNotFound
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var cf file
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		byID: make(map[string]*model.Vehicle, len(cf.Vehicles)),
	}
	for _, v := range cf.Vehicles {
		if !v.WellFormed() {
			logger.Warn("dropping malformed catalog entry", "vehicle", v)
			continue
		}
		if _, dup := c.byID[v.ID]; dup {
			logger.Warn("dropping duplicate catalog entry", "id", v.ID)
			continue
		}
		c.vehicles = append(c.vehicles, v)
		c.byID[v.ID] = v
	}
	return c, nil
}

// ByID returns the vehicle with the given identifier.
func (c *Catalog) ByID(id string) (*model.Vehicle, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// All returns every vehicle in file order.
func (c *Catalog) All() []*model.Vehicle {
	return c.vehicles
}

// Len returns the number of vehicles in the catalog.
func (c *Catalog) Len() int {
	return len(c.vehicles)
}
