package inspector

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alovak/cardinfo/cardinfo"
	"github.com/alovak/cardinfo/inspector/models"
	"github.com/alovak/cardinfo/internal/isomsg"
)

// API is a HTTP API for the inspector service
type API struct {
	inspector *Service
}

func NewAPI(inspector *Service) *API {
	return &API{
		inspector: inspector,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/cards/inspect", a.inspectCard)
	r.Post("/iso8583/inspect", a.inspectISO8583)
	r.Get("/brands", a.listBrands)
}

func (a *API) inspectCard(w http.ResponseWriter, r *http.Request) {
	req := models.InspectRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	inspection, err := a.inspector.Inspect(req)
	if err != nil {
		writeInspectError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inspection)
}

// inspectISO8583 takes a packed ISO 8583 (ASCII) message as the raw body.
func (a *API) inspectISO8583(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeBodyError(w, err)
		return
	}
	if len(raw) == 0 {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	inspection, err := a.inspector.InspectISO8583(raw)
	if err != nil {
		writeInspectError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inspection)
}

func (a *API) listBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.inspector.Brands())
}

func writeInspectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cardinfo.ErrInvalidFormat),
		errors.Is(err, isomsg.ErrMissingPAN),
		errors.Is(err, isomsg.ErrMalformed):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeBodyError(w http.ResponseWriter, err error) {
	if errors.As(err, new(*http.MaxBytesError)) {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
