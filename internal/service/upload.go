package service

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/grachmannico95/rent-recon/internal/domain"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTextUpload reads at most maxBytes from r and returns the content as
// UTF-8 text. Non-text content is refused; bytes that are not valid UTF-8 are
// decoded as Windows-1252, the encoding most bank exports fall back to.
func ReadTextUpload(r io.Reader, maxBytes int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", domain.ErrFileTooLarge
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return "", domain.ErrEmptyFile
	}

	if !isText(mimetype.Detect(data)) {
		return "", domain.ErrUnsupportedFileType
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode upload: %w", err)
	}

	return string(decoded), nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
