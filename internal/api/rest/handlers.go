package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nprnops/routing-reconciler/internal/domain/errors"
	"github.com/nprnops/routing-reconciler/internal/service/reconcile"
)

// Handler carries the reconciliation endpoints.
type Handler struct {
	svc      reconcile.Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(svc reconcile.Service, logger *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) decode(r *http.Request) (*FixRequest, error) {
	var req FixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.NewValidationError("INVALID_REQUEST_BODY", "invalid request body").WithCause(err)
	}
	if req.EnpTarget == "" {
		req.EnpTarget = "NXP1"
	}
	if err := h.validate.Struct(&req); err != nil {
		return nil, errors.NewValidationError("INVALID_REQUEST", err.Error())
	}
	return &req, nil
}

// FixENP handles POST /fix/enp — relational reassignment.
func (h *Handler) FixENP(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.svc.ReassignNumbers(r.Context(), req.Input, req.DryRun, req.EnpTarget)
	if err != nil {
		h.logger.Warn("reassignment failed", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// FixNPRN handles POST /fix/nprn — routing cache invalidation.
func (h *Handler) FixNPRN(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.svc.InvalidateRoutingCache(r.Context(), req.Input, req.DryRun)
	if err != nil {
		h.logger.Warn("cache invalidation failed", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// FixDisp handles POST /fix/disp — provisioning cleanup.
func (h *Handler) FixDisp(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.svc.CleanupProvisioning(r.Context(), req.Input, req.DryRun)
	if err != nil {
		h.logger.Warn("provisioning cleanup failed", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
