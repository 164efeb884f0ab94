package sheets

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrWorksheetNotFound = errors.New("worksheet not found")

// Client reads and writes one spreadsheet. Rows are returned as a rectangle:
// every row is padded with empty cells up to the widest row.
type Client interface {
	ReadRows(ctx context.Context, worksheet string) ([][]string, error)
	WriteCell(ctx context.Context, worksheet string, row, col int, value string) error
	Worksheets(ctx context.Context) ([]string, error)
}

// Provider hands out the client for a user's service account credentials.
type Provider interface {
	ClientFor(ctx context.Context, credentialsFile string) (Client, error)
}

var spreadsheetURLRegex = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// SpreadsheetIDFromURL accepts either a bare spreadsheet ID or a full sheet URL.
func SpreadsheetIDFromURL(idOrURL string) string {
	idOrURL = strings.TrimSpace(idOrURL)
	if m := spreadsheetURLRegex.FindStringSubmatch(idOrURL); len(m) == 2 {
		return m[1]
	}
	return idOrURL
}

// CellName converts 1-based coordinates into an A1 cell name.
func CellName(row, col int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("cell name (%d, %d): %w", row, col, err)
	}
	return name, nil
}

// quoteTitle quotes a worksheet title for use in A1 notation.
func quoteTitle(worksheet string) string {
	return "'" + strings.ReplaceAll(worksheet, "'", "''") + "'"
}

func padRows(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return rows
}
