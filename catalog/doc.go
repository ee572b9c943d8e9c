// Package catalog talks to a CKAN open-data catalog.
//
// Client.Search runs package_search biased toward pickup-schedule datasets and
// picks the best package; SelectResource chooses a CSV (preferred) or
// spreadsheet resource from it; Client.Download fetches the resource bytes.
//
// Nothing is cached: every call hits the network and asks intermediaries not
// to serve stored copies.
package catalog
