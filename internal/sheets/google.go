package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var _ Client = (*GoogleClient)(nil)
var _ Provider = (*GoogleProvider)(nil)

type GoogleClient struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewGoogleClient authenticates with a service account key (JSON) and binds the client to one spreadsheet.
func NewGoogleClient(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*GoogleClient, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("jwt config: %w", err)
	}

	// token requests and api calls both go through the traced transport
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &GoogleClient{
		srv:           srv,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (c *GoogleClient) ReadRows(ctx context.Context, worksheet string) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, quoteTitle(worksheet)).Context(ctx).Do()
	if err != nil {
		return nil, mapGoogleErr(worksheet, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, vals := range resp.Values {
		row := make([]string, len(vals))
		for j, v := range vals {
			if v != nil {
				row[j] = fmt.Sprint(v)
			}
		}
		rows[i] = row
	}

	return padRows(rows), nil
}

func (c *GoogleClient) WriteCell(ctx context.Context, worksheet string, row, col int, value string) error {
	cell, err := CellName(row, col)
	if err != nil {
		return err
	}

	vr := &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}
	_, err = c.srv.Spreadsheets.Values.
		Update(c.spreadsheetID, quoteTitle(worksheet)+"!"+cell, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return mapGoogleErr(worksheet, err)
	}

	return nil
}

func (c *GoogleClient) Worksheets(ctx context.Context) ([]string, error) {
	resp, err := c.srv.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet: %w", err)
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

// mapGoogleErr turns the api's "unable to parse range" answer for a missing tab into ErrWorksheetNotFound.
func mapGoogleErr(worksheet string, err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) &&
		gErr.Code == http.StatusBadRequest &&
		strings.Contains(gErr.Message, "Unable to parse range") {
		return fmt.Errorf("%w: %s", ErrWorksheetNotFound, worksheet)
	}
	return fmt.Errorf("sheets api [%s]: %w", worksheet, err)
}

// GoogleProvider keeps one client per credentials file, all bound to the same spreadsheet.
type GoogleProvider struct {
	spreadsheetID string
	readFile      func(name string) ([]byte, error)

	mutex   sync.Mutex
	clients map[string]*GoogleClient
}

func NewGoogleProvider(spreadsheetID string) *GoogleProvider {
	return &GoogleProvider{
		spreadsheetID: SpreadsheetIDFromURL(spreadsheetID),
		readFile:      os.ReadFile,
		clients:       make(map[string]*GoogleClient),
	}
}

func (p *GoogleProvider) ClientFor(_ context.Context, credentialsFile string) (Client, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if c, ok := p.clients[credentialsFile]; ok {
		return c, nil
	}

	data, err := p.readFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	// the client outlives the request that created it
	c, err := NewGoogleClient(context.Background(), data, p.spreadsheetID)
	if err != nil {
		return nil, err
	}
	p.clients[credentialsFile] = c

	return c, nil
}
