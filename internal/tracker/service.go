package tracker

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/2beens/workoutsheet/internal/auth"
	"github.com/2beens/workoutsheet/internal/session"
	"github.com/2beens/workoutsheet/internal/sheets"
	"github.com/2beens/workoutsheet/internal/telemetry/metrics"
	"github.com/2beens/workoutsheet/internal/telemetry/tracing"
	"github.com/2beens/workoutsheet/internal/workout"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

var (
	ErrWorksheetNotAvailable = errors.New("worksheet not available")
	ErrDayNotFound           = errors.New("day not found")
)

type planCache interface {
	Get(ctx context.Context, token, worksheet string) (*workout.Plan, error)
	Put(ctx context.Context, token, worksheet string, plan *workout.Plan) error
	Patch(ctx context.Context, token, worksheet string, upd workout.SetUpdate) (bool, error)
	Clear(ctx context.Context, token string) error
}

var _ planCache = (*session.Store)(nil)

// Service ties a user's session to their spreadsheet: it lists worksheets, loads
// (and caches) parsed plans, and writes set updates back.
type Service struct {
	provider       sheets.Provider
	lister         *sheets.WorksheetLister
	plans          planCache
	metricsManager *metrics.Manager
}

func NewService(
	provider sheets.Provider,
	lister *sheets.WorksheetLister,
	plans planCache,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		provider:       provider,
		lister:         lister,
		plans:          plans,
		metricsManager: metricsManager,
	}
}

func (s *Service) Worksheets(ctx context.Context, sess *auth.Session) ([]string, error) {
	client, err := s.provider.ClientFor(ctx, sess.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return s.lister.Selectable(ctx, sess.CredentialsFile, client)
}

// Plan returns the parsed worksheet, from the session cache when possible.
func (s *Service) Plan(ctx context.Context, sess *auth.Session, worksheet string) (plan *workout.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackerService.plan")
	span.SetAttributes(attribute.String("worksheet", worksheet))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	client, err := s.availableClient(ctx, sess, worksheet)
	if err != nil {
		return nil, err
	}

	plan, err = s.plans.Get(ctx, sess.Token, worksheet)
	if err == nil {
		s.metricsManager.CounterPlanCache.WithLabelValues("hit").Inc()
		span.SetAttributes(attribute.Bool("cached", true))
		return plan, nil
	}
	if !errors.Is(err, session.ErrNotCached) {
		// the sheet is the source of truth, a broken cache only costs a re-read
		log.Errorf("get cached plan [%s] for %s: %s", worksheet, sess.Username, err)
	}
	s.metricsManager.CounterPlanCache.WithLabelValues("miss").Inc()

	rows, err := client.ReadRows(ctx, worksheet)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	plan = workout.ParseRows(rows)

	if err := s.plans.Put(ctx, sess.Token, worksheet, plan); err != nil {
		log.Errorf("cache plan [%s] for %s: %s", worksheet, sess.Username, err)
	}

	log.Debugf("loaded worksheet [%s] for %s: %d days", worksheet, sess.Username, len(plan.Days))
	return plan, nil
}

func (s *Service) Day(ctx context.Context, sess *auth.Session, worksheet, label string) (*workout.Day, error) {
	plan, err := s.Plan(ctx, sess, worksheet)
	if err != nil {
		return nil, err
	}
	day, ok := plan.Day(label)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, label)
	}
	return day, nil
}

// UpdateSet writes the set into the sheet and then patches the cached plan.
// If a write fails midway the cached plan is dropped, so the next read sees the sheet as it is.
func (s *Service) UpdateSet(ctx context.Context, sess *auth.Session, worksheet string, upd workout.SetUpdate) (found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackerService.updateSet")
	span.SetAttributes(
		attribute.String("worksheet", worksheet),
		attribute.String("day", upd.Day),
		attribute.String("exercise", upd.Exercise),
		attribute.Int("set", upd.SetIndex),
	)
	defer span.End()
	defer func() {
		result := "updated"
		switch {
		case err != nil:
			result = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case !found:
			result = "not_found"
		}
		s.metricsManager.CounterSetUpdates.WithLabelValues(result).Inc()
	}()

	client, err := s.availableClient(ctx, sess, worksheet)
	if err != nil {
		return false, err
	}

	found, err = workout.UpdateSet(ctx, client, worksheet, upd)
	if err != nil {
		if found {
			if clearErr := s.plans.Clear(ctx, sess.Token); clearErr != nil {
				log.Errorf("clear cached plan after failed write for %s: %s", sess.Username, clearErr)
			}
		}
		return found, err
	}
	if !found {
		return false, nil
	}

	patched, err := s.plans.Patch(ctx, sess.Token, worksheet, upd)
	if err != nil {
		log.Errorf("patch cached plan [%s] for %s: %s", worksheet, sess.Username, err)
		return true, nil
	}
	if !patched {
		// the written set is not in the cached plan, next read rescans the sheet
		log.Tracef("cached plan [%s] for %s not patched, clearing", worksheet, sess.Username)
		if clearErr := s.plans.Clear(ctx, sess.Token); clearErr != nil {
			log.Errorf("clear cached plan for %s: %s", sess.Username, clearErr)
		}
	}

	return true, nil
}

func (s *Service) ClearCache(ctx context.Context, token string) error {
	return s.plans.Clear(ctx, token)
}

func (s *Service) availableClient(ctx context.Context, sess *auth.Session, worksheet string) (sheets.Client, error) {
	client, err := s.provider.ClientFor(ctx, sess.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	available, err := s.lister.Selectable(ctx, sess.CredentialsFile, client)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(available, worksheet) {
		return nil, fmt.Errorf("%w: %s", ErrWorksheetNotAvailable, worksheet)
	}

	return client, nil
}
