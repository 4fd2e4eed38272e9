// Package catalog resolves archipelago item ids to symbolic item names
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/LittlestCube/toontown-archipelago/internal/clients/catalog Client

import (
	"context"
	_ "embed"
	"os"
	"sort"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/datafile"
)

//go:embed data/items.yaml
var defaultItems []byte

//go:embed data/items.schema.json
var itemsSchema string

// Classification is the randomizer's importance class for an item
type Classification string

const (
	ClassificationProgression Classification = "progression"
	ClassificationUseful      Classification = "useful"
	ClassificationFiller      Classification = "filler"
	ClassificationTrap        Classification = "trap"
)

// Definition describes one item the randomizer can send
type Definition struct {
	ID             int64          `yaml:"id"`
	Name           string         `yaml:"name"`
	Classification Classification `yaml:"classification"`
}

// Client defines the interface for item catalog lookups
type Client interface {
	// LookupDefinition returns the definition for an item id. A missing id
	// is a NotFound error.
	LookupDefinition(ctx context.Context, id int64) (*Definition, error)

	// ListDefinitions returns every known item ordered by id
	ListDefinitions(ctx context.Context) ([]*Definition, error)
}

// Config holds the configuration for a static catalog
type Config struct {
	// Path overrides the embedded catalog with a YAML file on disk
	Path string
}

type staticClient struct {
	byID map[int64]*Definition
	ids  []int64
}

// New loads a static catalog from the embedded item list or cfg.Path
func New(cfg *Config) (Client, error) {
	raw := defaultItems
	if cfg != nil && cfg.Path != "" {
		var err error
		raw, err = os.ReadFile(cfg.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read catalog %s", cfg.Path)
		}
	}
	return Parse(raw)
}

// Parse builds a static catalog from raw YAML
func Parse(raw []byte) (Client, error) {
	schema, err := datafile.CompileSchema("items.schema.json", itemsSchema)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile catalog schema")
	}

	var f struct {
		Items []*Definition `yaml:"items"`
	}
	if err := schema.Decode(raw, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog")
	}

	c := &staticClient{byID: make(map[int64]*Definition, len(f.Items))}
	vb := errors.NewValidationBuilder()
	names := make(map[string]int64, len(f.Items))
	for _, def := range f.Items {
		if _, dup := c.byID[def.ID]; dup {
			vb.Fieldf("items", "duplicate id %d", def.ID)
			continue
		}
		if other, dup := names[def.Name]; dup {
			vb.Fieldf("items", "name %q used by %d and %d", def.Name, other, def.ID)
		}
		names[def.Name] = def.ID
		c.byID[def.ID] = def
		c.ids = append(c.ids, def.ID)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}
	sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })

	return c, nil
}

func (c *staticClient) LookupDefinition(_ context.Context, id int64) (*Definition, error) {
	def, ok := c.byID[id]
	if !ok {
		return nil, errors.NotFoundf("item %d not in catalog", id).WithMeta("item_id", id)
	}
	out := *def
	return &out, nil
}

func (c *staticClient) ListDefinitions(_ context.Context) ([]*Definition, error) {
	out := make([]*Definition, 0, len(c.ids))
	for _, id := range c.ids {
		def := *c.byID[id]
		out = append(out, &def)
	}
	return out, nil
}
