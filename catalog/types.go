package catalog

// Package is a CKAN dataset record as returned by package_search.
type Package struct {
	Title            string     `json:"title"`
	MetadataModified string     `json:"metadata_modified"`
	MetadataCreated  string     `json:"metadata_created"`
	Resources        []Resource `json:"resources"`
}

// Resource is one downloadable file of a Package.
type Resource struct {
	Format       string `json:"format"`
	URL          string `json:"url"`
	Name         string `json:"name"`
	LastModified string `json:"last_modified"`
	Created      string `json:"created"`
}

// searchResponse mirrors the package_search envelope.
type searchResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Count   int       `json:"count"`
		Results []Package `json:"results"`
	} `json:"result"`
}

// Kind tells downstream stages which decode/parse path a resource needs.
type Kind string

const (
	KindCSV   Kind = "csv"
	KindExcel Kind = "excel"
)
