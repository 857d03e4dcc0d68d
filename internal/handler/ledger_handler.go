package handler

import (
	"net/http"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/service"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// LedgerHandler serves obligations, the trusted account setting and the
// confirmation audit trail.
type LedgerHandler struct {
	service service.LedgerService
	logger  *logger.Logger
}

func NewLedgerHandler(service service.LedgerService, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		service: service,
		logger:  log,
	}
}

type createObligationRequest struct {
	ID         string                  `json:"id"`
	ContractID string                  `json:"contract_id"`
	Amount     decimal.Decimal         `json:"amount"`
	DueDate    string                  `json:"due_date"`
	Status     domain.ObligationStatus `json:"status"`
}

type trustedAccountRequest struct {
	Account string `json:"account"`
}

func (h *LedgerHandler) ListObligations(c echo.Context) error {
	obligations, err := h.service.ListObligations(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err, "failed to list obligations")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": obligations,
		"total": len(obligations),
	})
}

func (h *LedgerHandler) CreateObligation(c echo.Context) error {
	var req createObligationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	created, err := h.service.CreateObligation(c.Request().Context(), domain.PaymentObligation{
		ID:         req.ID,
		ContractID: req.ContractID,
		Amount:     req.Amount,
		DueDate:    req.DueDate,
		Status:     req.Status,
	})
	if err != nil {
		return respondError(c, h.logger, err, "failed to create obligation")
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *LedgerHandler) GetTrustedAccount(c echo.Context) error {
	account, err := h.service.GetTrustedAccount(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err, "failed to get trusted account")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"account":    account,
		"configured": account != "",
	})
}

func (h *LedgerHandler) SetTrustedAccount(c echo.Context) error {
	var req trustedAccountRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	account, err := h.service.SetTrustedAccount(c.Request().Context(), req.Account)
	if err != nil {
		return respondError(c, h.logger, err, "failed to save trusted account")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"account":    account,
		"configured": account != "",
	})
}

func (h *LedgerHandler) ListConfirmations(c echo.Context) error {
	records, err := h.service.ListConfirmations(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err, "failed to list confirmations")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": records,
		"total": len(records),
	})
}
