package repo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/nightlife-navigator/internal/domain"
)

var validate = validator.New()

// VenueCatalog is the read-only source of venue reference data.
type VenueCatalog interface {
	// List returns every venue in catalog order.
	List(ctx context.Context) ([]domain.Venue, error)

	// GetByID returns one venue. Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error)

	// GetByName returns the venue whose name matches, ignoring case.
	// Returns domain.ErrNotFound if none does.
	GetByName(ctx context.Context, name string) (domain.Venue, error)

	// Reload drops cached venues and reads the source again for region.
	Reload(ctx context.Context, region domain.Region) ([]domain.Venue, error)
}

// catalogFile is the YAML document layout of a venue catalog.
type catalogFile struct {
	Venues []domain.Venue `yaml:"venues"`
}

// yamlCatalog parses a YAML catalog on first use and caches the result until
// Reload.
type yamlCatalog struct {
	source func() ([]byte, error)
	sf     singleflight.Group

	mu     sync.RWMutex
	venues []domain.Venue
	loaded bool
}

// NewYAMLCatalog constructs a VenueCatalog over an in-memory YAML document,
// such as the embedded sample catalog.
func NewYAMLCatalog(data []byte) VenueCatalog {
	return &yamlCatalog{source: func() ([]byte, error) { return data, nil }}
}

// NewFileCatalog constructs a VenueCatalog that reads the YAML file at path.
// The file is read lazily and again on every Reload.
func NewFileCatalog(path string) VenueCatalog {
	return &yamlCatalog{source: func() ([]byte, error) { return os.ReadFile(path) }}
}

func (c *yamlCatalog) List(ctx context.Context) ([]domain.Venue, error) {
	venues, err := c.cached(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueCatalog.List: %w", err)
	}
	return venues, nil
}

func (c *yamlCatalog) GetByID(ctx context.Context, id uuid.UUID) (domain.Venue, error) {
	venues, err := c.cached(ctx)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueCatalog.GetByID: %w", err)
	}
	for _, v := range venues {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Venue{}, fmt.Errorf("repo.VenueCatalog.GetByID: %w", domain.ErrNotFound)
}

func (c *yamlCatalog) GetByName(ctx context.Context, name string) (domain.Venue, error) {
	venues, err := c.cached(ctx)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueCatalog.GetByName: %w", err)
	}
	name = strings.TrimSpace(name)
	for _, v := range venues {
		if domain.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return domain.Venue{}, fmt.Errorf("repo.VenueCatalog.GetByName: %q: %w", name, domain.ErrNotFound)
}

// Reload invalidates the cache and re-reads the source. The catalog is not
// partitioned by region yet, so every region sees the same venues.
func (c *yamlCatalog) Reload(ctx context.Context, region domain.Region) ([]domain.Venue, error) {
	c.mu.Lock()
	c.venues, c.loaded = nil, false
	c.mu.Unlock()

	slog.DebugContext(ctx, "venue catalog invalidated",
		"lat", region.Center.Lat,
		"lon", region.Center.Lon,
		"lat_delta", region.LatDelta,
		"lon_delta", region.LonDelta,
	)

	venues, err := c.cached(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueCatalog.Reload: %w", err)
	}
	return venues, nil
}

// cached returns a copy of the parsed venues, loading them if needed.
// Concurrent first loads share one read of the source.
func (c *yamlCatalog) cached(ctx context.Context) ([]domain.Venue, error) {
	c.mu.RLock()
	if c.loaded {
		out := append([]domain.Venue(nil), c.venues...)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.sf.Do("catalog", func() (any, error) {
		c.mu.RLock()
		if c.loaded {
			venues := c.venues
			c.mu.RUnlock()
			return venues, nil
		}
		c.mu.RUnlock()

		data, err := c.source()
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		venues, err := ParseCatalog(data)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.venues, c.loaded = venues, true
		c.mu.Unlock()
		slog.DebugContext(ctx, "venue catalog loaded", "venues", len(venues))
		return venues, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]domain.Venue(nil), v.([]domain.Venue)...), nil
}

// ParseCatalog decodes and validates a YAML venue catalog.
// Venues without an ID get the stable ID derived from their name. Duplicate
// IDs and records failing validation are reported as domain.ErrValidation.
func ParseCatalog(data []byte) ([]domain.Venue, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[uuid.UUID]string, len(f.Venues))
	for i := range f.Venues {
		v := &f.Venues[i]
		v.Name = strings.TrimSpace(v.Name)
		if err := validate.Struct(v); err != nil {
			return nil, fmt.Errorf("%w: venue %d (%q): %v", domain.ErrValidation, i, v.Name, err)
		}
		if v.ID == uuid.Nil {
			v.ID = domain.VenueID(v.Name)
		}
		if prev, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("%w: venue %q duplicates %q", domain.ErrValidation, v.Name, prev)
		}
		seen[v.ID] = v.Name
	}
	return f.Venues, nil
}
