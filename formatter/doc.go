// Package formatter serializes endpoint responses.
//
// Successful lookups are wrapped as {"schedule": ...}; failures as
// {"error": "..."}. Keys and nesting match what the front end reads.
package formatter
