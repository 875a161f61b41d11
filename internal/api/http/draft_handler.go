package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/quoting"
	"fleethire-backend/internal/service"
)

type DraftHandler struct {
	svc service.DraftService
}

func NewDraftHandler(svc service.DraftService) *DraftHandler {
	return &DraftHandler{svc: svc}
}

func (h *DraftHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.CreateSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create draft session")
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

func (h *DraftHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *DraftHandler) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ev, err := req.toEvent()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.svc.ApplyEvent(r.Context(), mux.Vars(r)["id"], ev)
	if err != nil {
		writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *DraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	quote, err := h.svc.Submit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, quote)
}

func (h *DraftHandler) DiscardSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DiscardSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func writeDraftError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDropoffBeforePickup), errors.Is(err, service.ErrDraftIncomplete):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// Event type discriminators accepted on the draft events endpoint.
const (
	eventSetVehicle        = "SET_VEHICLE"
	eventSetDates          = "SET_DATES"
	eventSetInsurance      = "SET_INSURANCE"
	eventToggleRequirement = "TOGGLE_REQUIREMENT"
	eventSetLocation       = "SET_LOCATION"
	eventSetKmOption       = "SET_KM_OPTION"
	eventSetCustomerInfo   = "SET_CUSTOMER_INFO"
)

type eventRequest struct {
	Type string `json:"type"`

	// SET_VEHICLE
	CategoryName string `json:"category_name,omitempty"`

	// SET_DATES
	PickupDate  string `json:"pickup_date,omitempty"`
	PickupTime  string `json:"pickup_time,omitempty"`
	DropoffDate string `json:"dropoff_date,omitempty"`
	DropoffTime string `json:"dropoff_time,omitempty"`

	// SET_INSURANCE / TOGGLE_REQUIREMENT
	RuleID  int32 `json:"rule_id,omitempty"`
	Checked bool  `json:"checked,omitempty"`

	// SET_LOCATION / SET_KM_OPTION
	Role string `json:"role,omitempty"`
	Name string `json:"name,omitempty"`

	// SET_CUSTOMER_INFO
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Notes         string `json:"notes,omitempty"`
	HowHeard      string `json:"how_heard,omitempty"`
}

func (req eventRequest) toEvent() (quoting.Event, error) {
	switch req.Type {
	case eventSetVehicle:
		return quoting.SetVehicle{CategoryName: req.CategoryName}, nil
	case eventSetDates:
		return quoting.SetDates{
			PickupDate:  req.PickupDate,
			PickupTime:  req.PickupTime,
			DropoffDate: req.DropoffDate,
			DropoffTime: req.DropoffTime,
		}, nil
	case eventSetInsurance:
		return quoting.SetInsurance{RuleID: req.RuleID}, nil
	case eventToggleRequirement:
		if req.RuleID == 0 {
			return nil, fmt.Errorf("rule_id is required")
		}
		return quoting.ToggleRequirement{RuleID: req.RuleID, Checked: req.Checked}, nil
	case eventSetLocation:
		role := domain.LegRole(req.Role)
		if role != domain.LegRolePickup && role != domain.LegRoleDropoff {
			return nil, fmt.Errorf("role must be %s or %s", domain.LegRolePickup, domain.LegRoleDropoff)
		}
		return quoting.SetLocation{Role: role, Name: req.Name}, nil
	case eventSetKmOption:
		return quoting.SetKmOption{Name: req.Name}, nil
	case eventSetCustomerInfo:
		return quoting.SetCustomerInfo{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Notes:         req.Notes,
			HowHeard:      req.HowHeard,
		}, nil
	default:
		return nil, fmt.Errorf("unknown event type: %q", req.Type)
	}
}
