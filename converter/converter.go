package converter

import (
	"fmt"

	"github.com/theoremus-urban-solutions/gomi-schedule/catalog"
	"github.com/theoremus-urban-solutions/gomi-schedule/classify"
	"github.com/theoremus-urban-solutions/gomi-schedule/schedule"
	"github.com/theoremus-urban-solutions/gomi-schedule/tabular"
)

// Converter turns a dataset table into a Schedule for one lookup
type Converter struct {
	Query   string
	Station string
}

// NewConverter creates a converter for the given lookup
func NewConverter(query, station string) *Converter {
	return &Converter{Query: query, Station: station}
}

// Build assembles the schedule for pkg/res from the parsed rows
func (c *Converter) Build(pkg catalog.Package, res catalog.Resource, rows tabular.Table) *schedule.Schedule {
	pickups := BuildPickups(rows)
	if len(pickups) == 0 {
		pickups = []schedule.Pickup{schedule.SentinelPickup()}
	}
	return &schedule.Schedule{
		Ward:    firstNonEmpty(pkg.Title, c.Query),
		Station: c.Station,
		Version: Version(pkg, res),
		Pickups: pickups,
	}
}

// BuildPickups emits one pickup per non-empty cell after the day column, in
// row then column order.
func BuildPickups(rows tabular.Table) []schedule.Pickup {
	header := rows.Header()
	var pickups []schedule.Pickup
	for i, row := range rows.Data() {
		day := firstNonEmpty(cell(row, 0), cell(header, 0), fmt.Sprintf("Row %d", i+1))
		for col := 1; col < len(row); col++ {
			value := row[col]
			if value == "" {
				continue
			}
			label := firstNonEmpty(cell(header, col), fmt.Sprintf("Column %d", col+1))
			pickups = append(pickups, schedule.Pickup{
				Day:   day,
				Type:  classify.Classify(label, value),
				Notes: label + ": " + value,
			})
		}
	}
	return pickups
}

// Version resolves the dataset date: resource last_modified, then package
// metadata_modified, then metadata_created.
func Version(pkg catalog.Package, res catalog.Resource) string {
	return firstNonEmpty(res.LastModified, pkg.MetadataModified, pkg.MetadataCreated, schedule.UnknownVersion)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
