package gomischedule

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Catalog string `json:"catalog"`
}

func handleHealth(l *Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		resp := healthResponse{
			Status:  "ok",
			Catalog: l.catalog.SearchURL(),
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
