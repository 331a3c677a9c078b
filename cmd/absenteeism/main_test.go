package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFlagName(t *testing.T) {
	assert.Equal(t, "daily-work-load-average", flagName("Daily_Work_Load_Average"))
	assert.Equal(t, "pet", flagName("Pet"))
}

func TestPredictCommand(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"predicted_hours": 4.5}`)
	}))
	defer srv.Close()

	out, err := execute(t, "predict", "--prediction-url", srv.URL,
		"--reason-group", "3", "--month-value", "7", "--day-of-the-week", "2",
		"--transportation-expense", "179", "--distance-to-work", "51", "--age", "38",
		"--daily-work-load-average", "239.55", "--body-mass-index", "31",
		"--education", "1", "--children", "0", "--pet", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Predicted Hours:")
	assert.Contains(t, out, "4.5")
	assert.Contains(t, out, "Source: "+srv.URL)
	assert.Equal(t, 239.55, received["Daily_Work_Load_Average"])
	assert.Equal(t, float64(3), received["Reason_Group"])
}

func TestPredictCommandMissingField(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	_, err := execute(t, "predict", "--prediction-url", srv.URL, "--reason-group", "3")
	assert.EqualError(t, err, "Month_Value is required")
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestRegisterCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		if body["reason_id"] == float64(99) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"success":false}`)
			return
		}
		_, _ = io.WriteString(w, `{"success":true,"message":"Absence registered."}`)
	}))
	defer srv.Close()

	out, err := execute(t, "register", "--absence-endpoint", srv.URL,
		"--employee-id", "11", "--reason-id", "23", "--date", "2025-03-14", "--hours", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Absence registered.")

	_, err = execute(t, "register", "--absence-endpoint", srv.URL,
		"--employee-id", "11", "--reason-id", "99", "--date", "2025-03-14", "--hours", "4")
	assert.EqualError(t, err, "Failed to register absence")

	_, err = execute(t, "register", "--absence-endpoint", srv.URL,
		"--employee-id", "11", "--reason-id", "23", "--hours", "4")
	assert.EqualError(t, err, "Absence date is required.")
}

func TestReasonsCommand(t *testing.T) {
	out, err := execute(t, "reasons", "--group", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Pregnancy, childbirth")
	assert.NotContains(t, out, "Dental consultation")
}
