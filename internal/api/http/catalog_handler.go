package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/service"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// catalogResponse is the full pricing snapshot the quote-builder fetches
// once per session, with the rules pre-partitioned by type for the UI.
type catalogResponse struct {
	VehicleTypes       []domain.VehicleType `json:"vehicle_types"`
	Locations          []domain.Location    `json:"locations"`
	InsuranceOptions   []domain.PricingRule `json:"insurance_options"`
	KmOptions          []domain.PricingRule `json:"km_options"`
	AdditionalServices []domain.PricingRule `json:"additional_services"`
}

func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := h.svc.GetCatalog(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}
	writeJSON(w, http.StatusOK, catalogResponse{
		VehicleTypes:       cat.VehicleTypes,
		Locations:          cat.Locations,
		InsuranceOptions:   cat.RulesByType(domain.PricingRuleTypeInsurance),
		KmOptions:          cat.RulesByType(domain.PricingRuleTypeKmAllowance),
		AdditionalServices: cat.RulesByType(domain.PricingRuleTypeAdditionalService),
	})
}

func (h *CatalogHandler) CreateVehicleType(w http.ResponseWriter, r *http.Request) {
	var vt domain.VehicleType
	if err := json.NewDecoder(r.Body).Decode(&vt); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.CreateVehicleType(r.Context(), &vt); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, vt)
}

func (h *CatalogHandler) UpdateVehicleType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var vt domain.VehicleType
	if err := json.NewDecoder(r.Body).Decode(&vt); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	vt.ID = id
	if err := h.svc.UpdateVehicleType(r.Context(), &vt); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vt)
}

func (h *CatalogHandler) DeactivateVehicleType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeactivateVehicleType(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var loc domain.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.CreateLocation(r.Context(), &loc); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, loc)
}

func (h *CatalogHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var loc domain.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	loc.ID = id
	if err := h.svc.UpdateLocation(r.Context(), &loc); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

func (h *CatalogHandler) DeactivateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeactivateLocation(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) CreatePricingRule(w http.ResponseWriter, r *http.Request) {
	var rule domain.PricingRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.CreatePricingRule(r.Context(), &rule); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rule)
}

func (h *CatalogHandler) UpdatePricingRule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var rule domain.PricingRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rule.ID = id
	if err := h.svc.UpdatePricingRule(r.Context(), &rule); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

func (h *CatalogHandler) DeactivatePricingRule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeactivatePricingRule(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return int32(id), true
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
