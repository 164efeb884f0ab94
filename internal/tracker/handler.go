package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/workoutsheet/internal/auth"
	"github.com/2beens/workoutsheet/internal/sheets"
	"github.com/2beens/workoutsheet/internal/telemetry/tracing"
	"github.com/2beens/workoutsheet/internal/workout"
	"github.com/2beens/workoutsheet/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracker_test

type workoutService interface {
	Worksheets(ctx context.Context, sess *auth.Session) ([]string, error)
	Plan(ctx context.Context, sess *auth.Session, worksheet string) (*workout.Plan, error)
	Day(ctx context.Context, sess *auth.Session, worksheet, label string) (*workout.Day, error)
	UpdateSet(ctx context.Context, sess *auth.Session, worksheet string, upd workout.SetUpdate) (bool, error)
}

var _ workoutService = (*Service)(nil)

type WorksheetsResponse struct {
	Worksheets []string `json:"worksheets"`
}

type DaysResponse struct {
	Worksheet string        `json:"worksheet"`
	Days      []workout.Day `json:"days"`
}

type UpdateSetResponse struct {
	Updated bool `json:"updated"`
}

type Handler struct {
	service workoutService
}

func NewHandler(service workoutService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/worksheets", handler.HandleWorksheets).Methods("GET", "OPTIONS").Name("worksheets")
	router.HandleFunc("/worksheets/{worksheet}/days", handler.HandleDays).Methods("GET", "OPTIONS").Name("days")
	router.HandleFunc("/worksheets/{worksheet}/days/{day}", handler.HandleDay).Methods("GET", "OPTIONS").Name("day")
	router.HandleFunc("/worksheets/{worksheet}/sets", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
}

func (handler *Handler) HandleWorksheets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.worksheets")
	defer span.End()

	sess, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	worksheets, err := handler.service.Worksheets(ctx, sess)
	if err != nil {
		log.Errorf("list worksheets for %s: %s", sess.Username, err)
		http.Error(w, "failed to get worksheets", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, WorksheetsResponse{Worksheets: worksheets}, http.StatusOK)
}

func (handler *Handler) HandleDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.days")
	defer span.End()

	sess, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	worksheet := mux.Vars(r)["worksheet"]
	plan, err := handler.service.Plan(ctx, sess, worksheet)
	if err != nil {
		writeServiceError(w, err, "failed to load worksheet")
		return
	}

	pkg.WriteJSON(w, DaysResponse{Worksheet: worksheet, Days: plan.Days}, http.StatusOK)
}

func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.day")
	defer span.End()

	sess, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	day, err := handler.service.Day(ctx, sess, vars["worksheet"], vars["day"])
	if err != nil {
		writeServiceError(w, err, "failed to load day")
		return
	}

	pkg.WriteJSON(w, day, http.StatusOK)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.updateSet")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	sess, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var upd workout.SetUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Errorf("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	if upd.Day == "" || upd.Exercise == "" {
		http.Error(w, "error, day or exercise empty", http.StatusBadRequest)
		return
	}
	if upd.SetIndex < 0 || upd.SetIndex >= workout.MaxSets {
		http.Error(w, "error, invalid set index", http.StatusBadRequest)
		return
	}

	worksheet := mux.Vars(r)["worksheet"]
	updated, err := handler.service.UpdateSet(ctx, sess, worksheet, upd)
	if err != nil {
		log.Errorf("update set [%s] [%s] [%s] #%d for %s: %s", worksheet, upd.Day, upd.Exercise, upd.SetIndex, sess.Username, err)
		writeServiceError(w, err, "failed to update set")
		return
	}
	if !updated {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	log.Debugf("set updated [%s] [%s] [%s] #%d by %s", worksheet, upd.Day, upd.Exercise, upd.SetIndex, sess.Username)
	pkg.WriteJSON(w, UpdateSetResponse{Updated: true}, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrWorksheetNotAvailable), errors.Is(err, sheets.ErrWorksheetNotFound):
		http.Error(w, "worksheet not found", http.StatusNotFound)
	case errors.Is(err, ErrDayNotFound):
		http.Error(w, "day not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", message, err)
		http.Error(w, message, http.StatusInternalServerError)
	}
}
