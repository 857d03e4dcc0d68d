package handler

import (
	"errors"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/service"
	"github.com/labstack/echo/v4"
)

var errFileRequired = errors.New("file is required")

// readFormFile returns the multipart field "file" as UTF-8 text.
func readFormFile(c echo.Context, maxBytes int64) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", errFileRequired
	}
	if file.Size > maxBytes {
		return "", domain.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return service.ReadTextUpload(src, maxBytes)
}
