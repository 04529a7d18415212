package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"

	"github.com/duofinder/duo-services/internal/adsvc/apperr"
	"github.com/duofinder/duo-services/internal/adsvc/service"
	"github.com/duofinder/duo-services/internal/adsvc/validate"
)

type Handler struct {
	games *service.GameService
	ads   *service.AdService
	valid *validate.Validator
}

func NewHandler(games *service.GameService, ads *service.AdService, valid *validate.Validator) *Handler {
	return &Handler{games: games, ads: ads, valid: valid}
}

// ErrorEnvelope is the wire form of every failure this service emits.
type ErrorEnvelope struct {
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode"`
	Fields     map[string]string `json:"fields,omitempty"`
}

type apiFunc func(w http.ResponseWriter, r *http.Request) error

// handle is the terminal error writer: handlers return errors instead of
// formatting failure responses themselves.
func (h *Handler) handle(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		if e := apperr.As(err); e != nil {
			writeJSON(w, e.StatusCode, ErrorEnvelope{
				Status:     "error",
				Message:    e.Message,
				StatusCode: e.StatusCode,
				Fields:     e.Fields,
			})
			return
		}

		// unexpected failure: log the raw error, never leak it
		log.Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, ErrorEnvelope{
			Status:     "error",
			Message:    "internal server error",
			StatusCode: http.StatusInternalServerError,
		})
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) error {
	games, err := h.games.ListGames(r.Context())
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, games)
	return nil
}

func (h *Handler) CreateAd(w http.ResponseWriter, r *http.Request) error {
	gameID := chi.URLParam(r, "id")

	req, err := h.valid.CreateAd(r.Body)
	if err != nil {
		return err
	}

	ad, err := h.ads.CreateAd(r.Context(), gameID, req)
	if err != nil {
		return err
	}

	// raw stored form: weekDays joined, hours in minutes
	writeJSON(w, http.StatusCreated, ad)
	return nil
}

func (h *Handler) ListAds(w http.ResponseWriter, r *http.Request) error {
	gameID := chi.URLParam(r, "id")

	ads, err := h.ads.ListAds(r.Context(), gameID)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, ads)
	return nil
}

func (h *Handler) GetAdContact(w http.ResponseWriter, r *http.Request) error {
	adID := chi.URLParam(r, "id")

	discord, err := h.ads.GetContact(r.Context(), adID)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, struct {
		Discord string `json:"discord"`
	}{Discord: discord})
	return nil
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}
