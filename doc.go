// Package gomischedule looks up municipal garbage-collection schedules from an
// open-data catalog and serves them as JSON.
//
// A lookup runs one sequential pipeline per request:
//
//	query -> catalog.Client.Search -> catalog.SelectResource
//	      -> catalog.Client.Download -> tabular (decode + parse)
//	      -> converter.Build -> schedule.Schedule
//
// Nothing is cached or retried; each request re-fetches from the catalog and
// the resource host. See StartServer for the HTTP surface.
package gomischedule
