package sheets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/workoutsheet/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultWorksheetsSkip = 1
	DefaultWorksheetsMax  = 8
)

// WorksheetLister returns the selectable worksheet titles: a window over the spreadsheet's tabs,
// skipping the leading overview tab(s). Titles are cached per cache key.
type WorksheetLister struct {
	cache       *freecache.Cache
	ttlSecs     int
	skip, limit int
}

func NewWorksheetLister(skip, limit, ttlSecs int) *WorksheetLister {
	megabyte := 1024 * 1024
	if skip < 0 {
		skip = DefaultWorksheetsSkip
	}
	if limit <= 0 {
		limit = DefaultWorksheetsMax
	}
	return &WorksheetLister{
		cache:   freecache.NewCache(megabyte),
		ttlSecs: ttlSecs,
		skip:    skip,
		limit:   limit,
	}
}

func (l *WorksheetLister) Selectable(ctx context.Context, cacheKey string, client Client) (titles []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "worksheetLister.selectable")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	all, err := l.all(ctx, cacheKey, client)
	if err != nil {
		return nil, err
	}

	return l.window(all), nil
}

// Invalidate drops the cached titles for the key.
func (l *WorksheetLister) Invalidate(cacheKey string) {
	l.cache.Del([]byte(cacheKey))
}

func (l *WorksheetLister) all(ctx context.Context, cacheKey string, client Client) ([]string, error) {
	if cached, err := l.cache.Get([]byte(cacheKey)); err == nil {
		var titles []string
		if err := json.Unmarshal(cached, &titles); err == nil {
			return titles, nil
		}
		log.Errorf("unmarshal cached worksheets for %s", cacheKey)
	}

	titles, err := client.Worksheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list worksheets: %w", err)
	}

	if l.ttlSecs > 0 {
		titlesJson, err := json.Marshal(titles)
		if err == nil {
			err = l.cache.Set([]byte(cacheKey), titlesJson, l.ttlSecs)
		}
		if err != nil {
			log.Errorf("cache worksheets for %s: %s", cacheKey, err)
		}
	}

	return titles, nil
}

func (l *WorksheetLister) window(titles []string) []string {
	if l.skip >= len(titles) {
		return []string{}
	}
	end := l.skip + l.limit
	if end > len(titles) {
		end = len(titles)
	}
	out := make([]string, end-l.skip)
	copy(out, titles[l.skip:end])
	return out
}
