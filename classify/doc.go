// Package classify maps a column header and cell value to a pickup type using
// multilingual keyword heuristics.
//
// Rules are evaluated in order and the first match wins, so the order of
// Rules is part of the contract: a cell matching both the burnable and the
// plastic keywords is burnable.
package classify
