package sheets

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var _ Client = (*XlsxClient)(nil)
var _ Provider = (*StaticProvider)(nil)

// XlsxClient serves a local workbook with the same layout as the google spreadsheet.
// Every write is saved to disk right away.
type XlsxClient struct {
	mutex sync.Mutex
	path  string
	file  *excelize.File
}

func OpenXlsx(path string) (*XlsxClient, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &XlsxClient{
		path: path,
		file: f,
	}, nil
}

func (c *XlsxClient) ReadRows(_ context.Context, worksheet string) ([][]string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := c.checkWorksheet(worksheet); err != nil {
		return nil, err
	}

	rows, err := c.file.GetRows(worksheet)
	if err != nil {
		return nil, fmt.Errorf("get rows [%s]: %w", worksheet, err)
	}

	return padRows(rows), nil
}

func (c *XlsxClient) WriteCell(_ context.Context, worksheet string, row, col int, value string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := c.checkWorksheet(worksheet); err != nil {
		return err
	}

	cell, err := CellName(row, col)
	if err != nil {
		return err
	}

	if err := c.file.SetCellStr(worksheet, cell, value); err != nil {
		return fmt.Errorf("set cell %s!%s: %w", worksheet, cell, err)
	}
	if err := c.file.Save(); err != nil {
		return fmt.Errorf("save workbook %s: %w", c.path, err)
	}

	log.Tracef("xlsx: %s!%s <- %q", worksheet, cell, value)
	return nil
}

func (c *XlsxClient) Worksheets(_ context.Context) ([]string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.file.GetSheetList(), nil
}

func (c *XlsxClient) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.file.Close()
}

func (c *XlsxClient) checkWorksheet(worksheet string) error {
	idx, err := c.file.GetSheetIndex(worksheet)
	if err != nil {
		return fmt.Errorf("sheet index [%s]: %w", worksheet, err)
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrWorksheetNotFound, worksheet)
	}
	return nil
}

// StaticProvider returns the same client for every user.
type StaticProvider struct {
	Client Client
}

func (p StaticProvider) ClientFor(_ context.Context, _ string) (Client, error) {
	return p.Client, nil
}
