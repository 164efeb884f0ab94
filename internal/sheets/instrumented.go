package sheets

import (
	"context"
	"time"

	"github.com/2beens/workoutsheet/internal/telemetry/metrics"
	"github.com/2beens/workoutsheet/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Client = (*InstrumentedClient)(nil)

// InstrumentedClient wraps a Client with spans and round trip metrics.
type InstrumentedClient struct {
	client         Client
	metricsManager *metrics.Manager
}

func Instrument(client Client, metricsManager *metrics.Manager) *InstrumentedClient {
	return &InstrumentedClient{
		client:         client,
		metricsManager: metricsManager,
	}
}

func (c *InstrumentedClient) ReadRows(ctx context.Context, worksheet string) (rows [][]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sheets.readRows")
	span.SetAttributes(attribute.String("worksheet", worksheet))
	defer c.observe(span, "read_rows", time.Now(), &err)

	rows, err = c.client.ReadRows(ctx, worksheet)
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.metricsManager.CounterWorksheetReads.WithLabelValues(result).Inc()
	span.SetAttributes(attribute.Int("rows", len(rows)))

	return rows, err
}

func (c *InstrumentedClient) WriteCell(ctx context.Context, worksheet string, row, col int, value string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sheets.writeCell")
	span.SetAttributes(
		attribute.String("worksheet", worksheet),
		attribute.Int("row", row),
		attribute.Int("col", col),
	)
	defer c.observe(span, "write_cell", time.Now(), &err)

	if err = c.client.WriteCell(ctx, worksheet, row, col, value); err == nil {
		c.metricsManager.CounterCellWrites.Inc()
	}
	return err
}

func (c *InstrumentedClient) Worksheets(ctx context.Context) (titles []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sheets.worksheets")
	defer c.observe(span, "worksheets", time.Now(), &err)

	return c.client.Worksheets(ctx)
}

func (c *InstrumentedClient) observe(span trace.Span, op string, start time.Time, err *error) {
	c.metricsManager.HistSheetsCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}

// InstrumentedProvider instruments every client handed out by the wrapped provider.
type InstrumentedProvider struct {
	Provider       Provider
	MetricsManager *metrics.Manager
}

func (p InstrumentedProvider) ClientFor(ctx context.Context, credentialsFile string) (Client, error) {
	c, err := p.Provider.ClientFor(ctx, credentialsFile)
	if err != nil {
		return nil, err
	}
	return Instrument(c, p.MetricsManager), nil
}
