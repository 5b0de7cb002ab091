package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/video-quiz-bot/internal/i18n"
)

// FlowCounter reports how many quiz flows are held in memory.
type FlowCounter interface {
	Len() int
}

// Handler serves the read-only status endpoints.
type Handler struct {
	catalog         []entities.CatalogEntry
	translator      *i18n.Translator
	flows           FlowCounter
	defaultLanguage string
	logger          *zap.Logger
}

func NewHandler(
	catalog []entities.CatalogEntry,
	translator *i18n.Translator,
	flows FlowCounter,
	defaultLanguage string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		catalog:         catalog,
		translator:      translator,
		flows:           flows,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// NewRouter mounts the handler routes.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Get("/api/catalog", h.handleCatalog)
	r.Get("/api/stats", h.handleStats)

	return r
}

type catalogItem struct {
	SourceID    string `json:"sourceId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if !h.translator.Supports(lang) {
		lang = h.defaultLanguage
	}

	items := make([]catalogItem, 0, len(h.catalog))
	for _, e := range h.catalog {
		items = append(items, catalogItem{
			SourceID:    e.SourceID,
			Name:        h.translator.T(lang, e.NameKey),
			Description: h.translator.T(lang, e.DescriptionKey),
		})
	}

	h.writeJSON(w, items)
}

func (h *Handler) handleStats(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, map[string]int{"activeFlows": h.flows.Len()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}
