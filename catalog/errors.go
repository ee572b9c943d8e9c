package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNoDatasetFound   = errors.New("No matching dataset found")
	ErrNoUsableResource = errors.New("Dataset does not provide CSV or spreadsheet data")
)

// Operations reported by StatusError.
const (
	OpSearch   = "Search"
	OpDownload = "Download"
)

// StatusError is a non-success HTTP status from the catalog or resource host.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %d", e.Op, e.StatusCode)
}
