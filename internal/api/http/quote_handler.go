package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/service"
)

type QuoteHandler struct {
	svc service.QuoteService
}

func NewQuoteHandler(svc service.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

type quoteListResponse struct {
	Quotes   []domain.Quote `json:"quotes"`
	Total    int32          `json:"total"`
	Page     int32          `json:"page"`
	PageSize int32          `json:"page_size"`
}

func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := q.Get("status")
	page := parseQueryInt32(q.Get("page"), 1)
	pageSize := parseQueryInt32(q.Get("page_size"), 20)

	quotes, total, err := h.svc.ListQuotes(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list quotes")
		return
	}
	writeJSON(w, http.StatusOK, quoteListResponse{
		Quotes:   quotes,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	quote, err := h.svc.GetQuote(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "quote not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get quote")
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status domain.QuoteStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	quote, err := h.svc.UpdateQuoteStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			writeError(w, http.StatusNotFound, "quote not found")
		case errors.Is(err, service.ErrInvalidStatusChange):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update quote status")
		}
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func parseQueryInt32(s string, def int32) int32 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v < 1 {
		return def
	}
	return int32(v)
}
