package lead

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router mounts the lead collection endpoints:
//
//	POST   /                – save a lead payload
//	GET    /                – list stored leads, newest first
//	GET    /export          – download the full collection as JSON
//	DELETE /?confirm=true   – clear the collection (no-op without confirm)
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Post("/", handleSave(svc))
	r.Get("/", handleList(svc))
	r.Get("/export", handleExport(svc))
	r.Delete("/", handleClear(svc))
	return r
}

func handleSave(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64*1024)).Decode(&payload); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lead payload"})
			return
		}

		rec := svc.Save(r.Context(), payload, r.Header.Get("Accept-Language"))
		if rec == nil {
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save lead"})
			return
		}
		respondJSON(w, http.StatusCreated, rec)
	}
}

func handleList(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.Records(r.Context())
		if err != nil {
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read leads"})
			return
		}
		respondJSON(w, http.StatusOK, records)
	}
}

func handleExport(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, err := svc.Export(r.Context())
		if err != nil {
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to export leads"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func handleClear(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		confirmed := r.URL.Query().Get("confirm") == "true"
		cleared := svc.Clear(r.Context(), confirmed)
		respondJSON(w, http.StatusOK, map[string]bool{"cleared": cleared})
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
