// Package bankfile turns delimited bank exports into transactions.
package bankfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/grachmannico95/rent-recon/internal/amount"
	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/pkg/logger"
)

const delimiterProbeLines = 5

var headerSentinels = []string{"date", "data", "descrição", "descricao", "montante"}

type Parser struct {
	logger     *logger.Logger
	now        func() time.Time
	generation atomic.Uint64
}

func NewParser(log *logger.Logger) *Parser {
	return &Parser{
		logger: log,
		now:    time.Now,
	}
}

// Parse reads every data row of text. Rows that cannot be read are dropped,
// so the result may be shorter than the number of lines; it is never an error.
func (p *Parser) Parse(ctx context.Context, text string) []domain.BankTransaction {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	delimiter := detectDelimiter(lines)
	prefix := fmt.Sprintf("bt-%d-%s", p.generation.Add(1), strconv.FormatInt(p.now().UnixNano(), 36))

	transactions := []domain.BankTransaction{}
	dropped := 0

	for index, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if index == 0 || isHeader(line) {
			continue
		}

		fields, err := splitLine(line, delimiter)
		if err != nil || len(fields) < 4 {
			dropped++
			p.logger.Debug(ctx, "Dropping bank row",
				"line", index+1,
				"fields", len(fields),
			)
			continue
		}

		value, ok := amount.Normalize(fields[3])
		if !ok {
			dropped++
			p.logger.Debug(ctx, "Dropping bank row with unreadable amount",
				"line", index+1,
				"amount", fields[3],
			)
			continue
		}

		transactions = append(transactions, domain.BankTransaction{
			ID:          fmt.Sprintf("%s-%d", prefix, index),
			Date:        strings.TrimSpace(fields[0]),
			Reference:   strings.TrimSpace(fields[1]),
			Description: strings.TrimSpace(fields[2]),
			Amount:      value,
			RawLine:     line,
		})
	}

	p.logger.Debug(ctx, "Bank file parsed",
		"lines", len(lines),
		"transactions", len(transactions),
		"dropped", dropped,
		"delimiter", string(delimiter),
	)

	return transactions
}

func detectDelimiter(lines []string) rune {
	for i := 0; i < len(lines) && i < delimiterProbeLines; i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if strings.Contains(lines[i], ";") {
			return ';'
		}
		return ','
	}
	return ','
}

func isHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, sentinel := range headerSentinels {
		if strings.Contains(lower, sentinel) {
			return true
		}
	}
	return false
}

// splitLine honours CSV quoting so a quoted "1,234.56" stays one field. A row
// the quoting rules cannot read as four fields, such as one with an unbalanced
// quote, falls back to a plain split on the delimiter.
func splitLine(line string, delimiter rune) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	fields, err := reader.Read()
	if err == nil && len(fields) >= 4 {
		return fields, nil
	}

	return strings.Split(line, string(delimiter)), nil
}
