// Package export renders transactions as CSV or YAML.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts csv, yaml or yml, ignoring case. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, s)
	}
}

// ContentType is the HTTP content type of f.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "text/csv"
}

// Extension is the file extension of f, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Row is one exported transaction. Amounts are formatted to the precision of their currency.
type Row struct {
	ID           string `yaml:"id"`
	Date         string `yaml:"date"`
	Kind         string `yaml:"kind"`
	Category     string `yaml:"category"`
	Description  string `yaml:"description,omitempty"`
	Amount       string `yaml:"amount"`
	Currency     string `yaml:"currency"`
	BaseAmount   string `yaml:"baseAmount"`
	BaseCurrency string `yaml:"baseCurrency"`
}

var csvHeader = []string{"id", "date", "kind", "category", "description", "amount", "currency", "base_amount", "base_currency"}

func (r Row) record() []string {
	return []string{r.ID, r.Date, r.Kind, r.Category, r.Description, r.Amount, r.Currency, r.BaseAmount, r.BaseCurrency}
}

// NewRows builds rows in the order of txns. Categories are named by their
// catalog name; unknown ids are written as-is.
func NewRows(txns []domain.ValuedTransaction, categories []domain.Category) []Row {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	rows := make([]Row, len(txns))
	for i, t := range txns {
		code := t.CurrencyCode
		if code == "" {
			code = t.BaseCurrency
		}
		category, ok := names[t.CategoryID]
		if !ok {
			category = t.CategoryID
		}
		rows[i] = Row{
			ID:           t.ID,
			Date:         t.Timestamp.UTC().Format(time.RFC3339),
			Kind:         string(t.Kind),
			Category:     category,
			Description:  t.Description,
			Amount:       utils.FormatWithCurrencyPrecision(t.Amount, code),
			Currency:     code,
			BaseAmount:   utils.FormatWithCurrencyPrecision(t.BaseAmount, t.BaseCurrency),
			BaseCurrency: t.BaseCurrency,
		}
	}
	return rows
}

// Write encodes rows to w in format f.
func Write(w io.Writer, f Format, rows []Row) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatYAML:
		return WriteYAML(w, rows)
	default:
		return fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, f)
	}
}

// WriteCSV writes a header line followed by one record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type yamlDocument struct {
	Transactions []Row `yaml:"transactions"`
}

// WriteYAML writes rows as a single document with a transactions list.
func WriteYAML(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlDocument{Transactions: rows}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
