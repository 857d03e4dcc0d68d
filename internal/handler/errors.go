package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error           string `json:"error"`
	SecurityAlert   bool   `json:"security_alert,omitempty"`
	ExpectedAccount string `json:"expected_account,omitempty"`
	ReceivedAccount string `json:"received_account,omitempty"`
}

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrSessionNotFound, http.StatusNotFound},
	{domain.ErrProofNotFound, http.StatusNotFound},
	{domain.ErrRowNotFound, http.StatusNotFound},
	{domain.ErrObligationNotFound, http.StatusNotFound},
	{domain.ErrRowProcessed, http.StatusConflict},
	{domain.ErrObligationNotOpen, http.StatusConflict},
	{domain.ErrObligationClaimed, http.StatusConflict},
	{domain.ErrObligationExists, http.StatusConflict},
	{domain.ErrAlreadyConfirmed, http.StatusConflict},
	{domain.ErrInvalidObligation, http.StatusBadRequest},
	{domain.ErrEmptyFile, http.StatusBadRequest},
	{domain.ErrNoMatch, http.StatusUnprocessableEntity},
	{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{domain.ErrUnsupportedFileType, http.StatusUnsupportedMediaType},
}

// respondError writes err as a JSON error body. Unknown errors are logged and
// reported as fallback with a 500.
func respondError(c echo.Context, log *logger.Logger, err error, fallback string) error {
	ctx := c.Request().Context()

	var mismatch *domain.SecurityMismatchError
	if errors.As(err, &mismatch) {
		log.Warn(ctx, "Security alert raised",
			"expected", mismatch.Expected,
			"received", mismatch.Received,
		)
		return c.JSON(http.StatusForbidden, errorResponse{
			Error:           mismatch.Error(),
			SecurityAlert:   true,
			ExpectedAccount: mismatch.Expected,
			ReceivedAccount: mismatch.Received,
		})
	}

	// Extraction failures always read the same to the caller.
	if errors.Is(err, domain.ErrExtractionFailed) {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: domain.ErrExtractionFailed.Error()})
	}

	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return c.JSON(m.status, errorResponse{Error: err.Error()})
		}
	}

	if errors.Is(err, context.Canceled) {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "request cancelled"})
	}

	log.Error(ctx, fallback,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: fallback})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
