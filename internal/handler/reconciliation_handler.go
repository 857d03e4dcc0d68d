package handler

import (
	"errors"
	"net/http"

	"github.com/grachmannico95/rent-recon/internal/service"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/labstack/echo/v4"
)

type ReconciliationHandler struct {
	service  service.ReconciliationService
	logger   *logger.Logger
	maxBytes int64
}

func NewReconciliationHandler(service service.ReconciliationService, log *logger.Logger, maxBytes int64) *ReconciliationHandler {
	return &ReconciliationHandler{
		service:  service,
		logger:   log,
		maxBytes: maxBytes,
	}
}

type manualMatchRequest struct {
	ObligationID string `json:"obligation_id"`
}

func (h *ReconciliationHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling bank file upload")

	text, err := readFormFile(c, h.maxBytes)
	if errors.Is(err, errFileRequired) {
		return badRequest(c, err.Error())
	}
	if err != nil {
		h.logger.Warn(ctx, "Bank file rejected",
			"error", err,
		)
		return respondError(c, h.logger, err, "failed to read file")
	}

	view, err := h.service.CreateSession(ctx, text)
	if err != nil {
		return respondError(c, h.logger, err, "failed to create reconciliation")
	}

	return c.JSON(http.StatusCreated, view)
}

func (h *ReconciliationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": h.service.ListSessions(c.Request().Context()),
	})
}

func (h *ReconciliationHandler) Get(c echo.Context) error {
	view, err := h.service.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to get reconciliation")
	}

	return c.JSON(http.StatusOK, view)
}

func (h *ReconciliationHandler) Reset(c echo.Context) error {
	view, err := h.service.ResetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to reset reconciliation")
	}

	return c.JSON(http.StatusOK, view)
}

func (h *ReconciliationHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.logger, err, "failed to delete reconciliation")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReconciliationHandler) Candidates(c echo.Context) error {
	candidates, err := h.service.Candidates(c.Request().Context(), c.Param("id"), c.Param("rowId"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list candidates")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"row_id": c.Param("rowId"),
		"items":  candidates,
	})
}

func (h *ReconciliationHandler) Match(c echo.Context) error {
	var req manualMatchRequest
	if err := c.Bind(&req); err != nil || req.ObligationID == "" {
		return badRequest(c, "obligation_id is required")
	}

	row, err := h.service.ManualMatch(c.Request().Context(), c.Param("id"), c.Param("rowId"), req.ObligationID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to match row")
	}

	return c.JSON(http.StatusOK, row)
}

func (h *ReconciliationHandler) Process(c echo.Context) error {
	ctx := c.Request().Context()

	batch, err := h.service.Process(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to process reconciliation")
	}

	h.logger.Info(ctx, "Reconciliation processed",
		"session_id", c.Param("id"),
		"succeeded", batch.Succeeded,
		"failed", batch.Failed,
	)

	return c.JSON(http.StatusOK, batch)
}
