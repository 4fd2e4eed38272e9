package rewards

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"github.com/LittlestCube/toontown-archipelago/internal/clients/catalog"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

// RegistryConfig holds the dependencies for a Registry
type RegistryConfig struct {
	Tables  *tables.Tables
	Catalog catalog.Client

	// Items overrides the default item table
	Items map[string]Reward

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// Validate validates the config
func (c *RegistryConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// Registry maps item names and ids to rewards. It never changes after
// NewRegistry returns, so concurrent resolves are safe.
type Registry struct {
	items   map[string]Reward
	catalog catalog.Client
	logger  *slog.Logger
}

// NewRegistry builds the item table and checks every reward's parameters
// against the linkage tables
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	source := cfg.Items
	if source == nil {
		source = DefaultItems()
	}

	items := make(map[string]Reward, len(source))
	vb := errors.NewValidationBuilder()
	for name, reward := range source {
		if reward == nil {
			vb.Fieldf(name, "has no reward")
			continue
		}
		if err := reward.validate(cfg.Tables); err != nil {
			vb.InvalidField(name, errors.GetMessage(err))
			continue
		}
		items[name] = reward
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid item table")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{items: items, catalog: cfg.Catalog, logger: logger}, nil
}

// ResolveByName returns the reward for an item name, or Undefined wrapping
// the name when there is none
func (r *Registry) ResolveByName(name string) Reward {
	if reward, ok := r.items[name]; ok {
		return reward
	}
	return Undefined{Descriptor: name}
}

// ResolveByID looks the id up in the catalog and resolves its name. An id
// the catalog does not know resolves to Undefined wrapping the id. Errors
// are returned only when the catalog itself fails.
func (r *Registry) ResolveByID(ctx context.Context, id int64) (Reward, error) {
	def, err := r.catalog.LookupDefinition(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			r.logger.DebugContext(ctx, "item id not in catalog", "item_id", id)
			return Undefined{Descriptor: strconv.FormatInt(id, 10)}, nil
		}
		return nil, errors.Wrapf(err, "failed to look up item %d", id)
	}
	return r.ResolveByName(def.Name), nil
}

// Names returns every registered item name in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
