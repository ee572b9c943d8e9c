package gomischedule

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/gomi-schedule/catalog"
	"github.com/theoremus-urban-solutions/gomi-schedule/config"
	"github.com/theoremus-urban-solutions/gomi-schedule/converter"
	"github.com/theoremus-urban-solutions/gomi-schedule/internal"
	"github.com/theoremus-urban-solutions/gomi-schedule/schedule"
	"github.com/theoremus-urban-solutions/gomi-schedule/tabular"
)

// Catalog is the subset of catalog.Client a Lookup needs.
type Catalog interface {
	Search(ctx context.Context, query string) (catalog.Package, error)
	Download(ctx context.Context, resourceURL string) ([]byte, error)
	SearchURL() string
}

// Lookup runs the schedule pipeline against a catalog.
type Lookup struct {
	catalog Catalog
}

// NewLookup creates a lookup over c.
func NewLookup(c Catalog) *Lookup {
	return &Lookup{catalog: c}
}

// NewLookupFromConfig wires a catalog.Client from cfg.
func NewLookupFromConfig(cfg config.AppConfig) *Lookup {
	return NewLookup(catalog.NewClient(nil, cfg.Catalog, cfg.Download))
}

// Schedule resolves query to a schedule. The returned schedule always has at
// least one pickup.
func (l *Lookup) Schedule(ctx context.Context, query, station string) (*schedule.Schedule, error) {
	return l.schedule(ctx, internal.RequestLogger(uuid.NewString()), query, station)
}

func (l *Lookup) schedule(ctx context.Context, logger *log.Logger, query, station string) (*schedule.Schedule, error) {
	logger.Printf("lookup q=%q station=%q", query, station)

	pkg, err := l.catalog.Search(ctx, query)
	if err != nil {
		logger.Printf("search failed: %v", err)
		return nil, err
	}
	res, kind, err := catalog.SelectResource(pkg.Resources)
	if err != nil {
		logger.Printf("package %q: %v", pkg.Title, err)
		return nil, err
	}
	logger.Printf("package %q resource %s %s", pkg.Title, kind, res.URL)

	payload, err := l.catalog.Download(ctx, res.URL)
	if err != nil {
		logger.Printf("download failed: %v", err)
		return nil, err
	}

	rows, err := newSource(kind, payload).Rows()
	if err != nil {
		logger.Printf("parse failed: %v", err)
		return nil, err
	}

	s := converter.NewConverter(query, station).Build(pkg, res, rows)
	logger.Printf("rows=%d pickups=%d version=%s", len(rows), len(s.Pickups), s.Version)
	return s, nil
}

func newSource(kind catalog.Kind, payload []byte) tabular.Source {
	switch kind {
	case catalog.KindExcel:
		return tabular.Workbook(payload)
	case catalog.KindCSV:
		return tabular.DelimitedText(tabular.Decode(payload))
	}
	panic(fmt.Sprintf("unknown resource kind %q", kind))
}
