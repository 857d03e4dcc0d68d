package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTextUpload(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		max     int64
		want    string
		wantErr error
	}{
		{
			name:  "plain semicolon export",
			input: []byte("Date;Ref;Desc;Amount\n2024-03-01;REF1;Rent c1;500.000,00\n"),
			max:   1024,
			want:  "Date;Ref;Desc;Amount\n2024-03-01;REF1;Rent c1;500.000,00\n",
		},
		{
			name:  "utf-8 bom stripped",
			input: append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b,c,d\n")...),
			max:   1024,
			want:  "a,b,c,d\n",
		},
		{
			name:  "windows-1252 decoded",
			input: []byte("Data;Refer\xeancia;Descri\xe7\xe3o;Montante\n"),
			max:   1024,
			want:  "Data;Referência;Descrição;Montante\n",
		},
		{
			name:    "too large",
			input:   []byte(strings.Repeat("x", 65)),
			max:     64,
			wantErr: domain.ErrFileTooLarge,
		},
		{
			name:    "blank",
			input:   []byte(" \n\t\n"),
			max:     64,
			wantErr: domain.ErrEmptyFile,
		},
		{
			name:    "pdf refused",
			input:   []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n"),
			max:     1024,
			wantErr: domain.ErrUnsupportedFileType,
		},
		{
			name:    "png refused",
			input:   []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"),
			max:     1024,
			wantErr: domain.ErrUnsupportedFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadTextUpload(bytes.NewReader(tt.input), tt.max)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadTextUpload_ExactlyAtLimit(t *testing.T) {
	content := strings.Repeat("a", 63) + "\n"

	got, err := ReadTextUpload(strings.NewReader(content), int64(len(content)))

	require.NoError(t, err)
	assert.Equal(t, content, got)
}
