// Package schedule defines the weekly pickup schedule document served to the
// front end.
//
// The types carry JSON tags matching the shape the UI consumes:
//
//	{
//	  "ward": "文京区 収集日カレンダー",
//	  "version": "2024-03-01T09:00:00",
//	  "pickups": [{"day": "月", "type": "burnable", "notes": "可燃: ○"}],
//	  "bulkyFees": [{"item": "Bicycle", "feeYen": 2000}]
//	}
//
// Static sample fixtures (sample.go) share the same shape so the front end can
// render them interchangeably with live lookups.
package schedule
