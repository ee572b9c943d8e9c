// Package converter assembles a schedule.Schedule from a parsed dataset.
//
// The first table row is the header; every following row is a data row. Each
// non-empty cell after the first column becomes one Pickup, classified from
// its column header and value:
//
//	rows := tabular.ParseCSV(tabular.Decode(payload))
//	conv := converter.NewConverter(query, station)
//	s := conv.Build(pkg, res, rows)
//
// Build never returns an empty pickup list; when no cell qualifies the
// sentinel pickup from schedule.SentinelPickup is used. Converter instances
// hold no mutable state and may be shared.
package converter
