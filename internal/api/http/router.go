package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the back-office API under /api/v1. Every route sits behind
// the bearer-token middleware since the quote builder is staff-only.
func NewRouter(auth *AuthMiddleware, catalog *CatalogHandler, drafts *DraftHandler, quotes *QuoteHandler) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Middleware)

	// Catalog
	api.HandleFunc("/catalog", catalog.GetCatalog).Methods(http.MethodGet)
	api.HandleFunc("/catalog/vehicle-types", catalog.CreateVehicleType).Methods(http.MethodPost)
	api.HandleFunc("/catalog/vehicle-types/{id}", catalog.UpdateVehicleType).Methods(http.MethodPut)
	api.HandleFunc("/catalog/vehicle-types/{id}", catalog.DeactivateVehicleType).Methods(http.MethodDelete)
	api.HandleFunc("/catalog/locations", catalog.CreateLocation).Methods(http.MethodPost)
	api.HandleFunc("/catalog/locations/{id}", catalog.UpdateLocation).Methods(http.MethodPut)
	api.HandleFunc("/catalog/locations/{id}", catalog.DeactivateLocation).Methods(http.MethodDelete)
	api.HandleFunc("/catalog/pricing-rules", catalog.CreatePricingRule).Methods(http.MethodPost)
	api.HandleFunc("/catalog/pricing-rules/{id}", catalog.UpdatePricingRule).Methods(http.MethodPut)
	api.HandleFunc("/catalog/pricing-rules/{id}", catalog.DeactivatePricingRule).Methods(http.MethodDelete)

	// Draft sessions
	api.HandleFunc("/quotes/drafts", drafts.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/quotes/drafts/{id}", drafts.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/quotes/drafts/{id}/events", drafts.ApplyEvent).Methods(http.MethodPost)
	api.HandleFunc("/quotes/drafts/{id}/submit", drafts.Submit).Methods(http.MethodPost)
	api.HandleFunc("/quotes/drafts/{id}", drafts.DiscardSession).Methods(http.MethodDelete)

	// Persisted quotes
	api.HandleFunc("/quotes", quotes.ListQuotes).Methods(http.MethodGet)
	api.HandleFunc("/quotes/{id}", quotes.GetQuote).Methods(http.MethodGet)
	api.HandleFunc("/quotes/{id}/status", quotes.UpdateQuoteStatus).Methods(http.MethodPatch)

	return router
}
