package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	level := log.GetLevel()
	log.SetLevel(log.TraceLevel)
	defer log.SetLevel(level)

	r := mux.NewRouter()
	r.HandleFunc("/worksheets", func(w http.ResponseWriter, r *http.Request) {}).Name("worksheets")
	r.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "failed", http.StatusInternalServerError)
	}).Name("broken")
	r.Use(LogRequest())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/worksheets", nil))
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, log.TraceLevel, entry.Level)
	assert.Equal(t, "worksheets", entry.Data["route"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/broken", nil))
	require.Len(t, hook.Entries, 2)
	entry = hook.LastEntry()
	assert.Equal(t, log.WarnLevel, entry.Level)
	assert.Equal(t, http.StatusInternalServerError, entry.Data["status"])
}
