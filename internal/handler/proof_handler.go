package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/service"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/labstack/echo/v4"
)

type ProofHandler struct {
	service  service.ProofService
	logger   *logger.Logger
	maxBytes int64
}

func NewProofHandler(service service.ProofService, log *logger.Logger, maxBytes int64) *ProofHandler {
	return &ProofHandler{
		service:  service,
		logger:   log,
		maxBytes: maxBytes,
	}
}

type verifyProofRequest struct {
	Text string `json:"text"`
}

type confirmProofRequest struct {
	ObligationID string `json:"obligation_id"`
}

// Verify accepts the slip as a multipart "file" or as JSON {"text": "..."}.
func (h *ProofHandler) Verify(c echo.Context) error {
	ctx := c.Request().Context()

	text, err := h.readSlip(c)
	if errors.Is(err, errFileRequired) {
		return badRequest(c, "file or text is required")
	}
	if err != nil {
		return respondError(c, h.logger, err, "failed to read proof")
	}

	verification, err := h.service.Verify(ctx, text)
	if err != nil {
		return respondError(c, h.logger, err, "failed to verify proof")
	}

	return c.JSON(http.StatusCreated, verification)
}

func (h *ProofHandler) Get(c echo.Context) error {
	verification, err := h.service.GetProof(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to get proof")
	}

	return c.JSON(http.StatusOK, verification)
}

// Confirm settles the proof. The body is optional; without obligation_id the
// suggested match is used.
func (h *ProofHandler) Confirm(c echo.Context) error {
	var req confirmProofRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	verification, err := h.service.Confirm(c.Request().Context(), c.Param("id"), req.ObligationID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to confirm proof")
	}

	return c.JSON(http.StatusOK, verification)
}

func (h *ProofHandler) readSlip(c echo.Context) (string, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return readFormFile(c, h.maxBytes)
	}

	var req verifyProofRequest
	if err := c.Bind(&req); err != nil {
		return "", errFileRequired
	}
	if strings.TrimSpace(req.Text) == "" {
		return "", errFileRequired
	}
	if int64(len(req.Text)) > h.maxBytes {
		return "", domain.ErrFileTooLarge
	}

	return req.Text, nil
}
