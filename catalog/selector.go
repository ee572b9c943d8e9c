package catalog

import "strings"

// SelectResource picks the first CSV resource with a URL, else the first
// xlsx/xls resource with a URL.
func SelectResource(resources []Resource) (Resource, Kind, error) {
	usable := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if strings.TrimSpace(r.URL) != "" {
			usable = append(usable, r)
		}
	}

	for _, r := range usable {
		if strings.EqualFold(strings.TrimSpace(r.Format), "csv") {
			return r, KindCSV, nil
		}
	}
	for _, r := range usable {
		switch strings.ToLower(strings.TrimSpace(r.Format)) {
		case "xlsx", "xls":
			return r, KindExcel, nil
		}
	}
	return Resource{}, "", ErrNoUsableResource
}

// pickPackage prefers the first result whose title contains hint.
func pickPackage(results []Package, hint string) Package {
	if hint != "" {
		for _, p := range results {
			if strings.Contains(p.Title, hint) {
				return p
			}
		}
	}
	return results[0]
}
