package visitor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/trackkit/trackkit/pkg/clientip"
)

// Router mounts the visitor collection endpoints:
//
//	POST /  – record a page-view beacon
//	GET  /  – list stored visitor records, newest first
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Post("/", handleTrack(svc))
	r.Get("/", handleList(svc))
	return r
}

func handleTrack(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var b Beacon
		// The body is optional: a bare beacon still produces a usable record
		// from headers alone. Malformed JSON is treated the same way.
		_ = json.NewDecoder(http.MaxBytesReader(w, r.Body, 16*1024)).Decode(&b)

		b.IP = clientip.GetIP(r)
		b.UserAgent = r.UserAgent()
		b.AcceptLanguage = r.Header.Get("Accept-Language")
		if b.Referrer == "" {
			b.Referrer = r.Referer()
		}
		if b.Language == "" {
			b.Language = primaryLanguage(b.AcceptLanguage)
		}

		rec := svc.Track(r.Context(), b)
		respondJSON(w, http.StatusAccepted, rec)
	}
}

func handleList(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.Records(r.Context())
		if err != nil {
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read visitor records"})
			return
		}
		respondJSON(w, http.StatusOK, records)
	}
}

// primaryLanguage extracts the first token of an Accept-Language header,
// e.g. "de-DE,de;q=0.9" yields "de-DE".
func primaryLanguage(acceptLanguage string) string {
	first, _, _ := strings.Cut(acceptLanguage, ",")
	first, _, _ = strings.Cut(first, ";")
	return strings.TrimSpace(first)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
