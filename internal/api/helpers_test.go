// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/coolerselect/internal/config"
	"github.com/tomtom215/coolerselect/internal/database"
	"github.com/tomtom215/coolerselect/internal/events"
	"github.com/tomtom215/coolerselect/internal/models"
	"github.com/tomtom215/coolerselect/internal/selection"
)

// stubSelector returns a fixed result or error and records the request.
type stubSelector struct {
	mu     sync.Mutex
	result *selection.Result
	err    error
	calls  []selection.Request
}

func (s *stubSelector) Select(_ context.Context, req selection.Request) (*selection.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	return s.result, s.err
}

func (s *stubSelector) Config() selection.Config {
	return *selection.DefaultConfig()
}

type notification struct {
	entity events.Entity
	action events.Action
	id     int64
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *recordingNotifier) Notify(_ context.Context, entity events.Entity, action events.Action, id int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{entity, action, id})
}

func (n *recordingNotifier) all() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.sent...)
}

type fixedBreaker string

func (b fixedBreaker) State() string { return string(b) }

func testConfig() *config.Config {
	return &config.Config{
		API:      config.APIConfig{DefaultPageSize: 2, MaxPageSize: 3},
		Import:   config.ImportConfig{MaxUploadBytes: 4096, BatchSize: 10},
		Security: config.SecurityConfig{RateLimitDisabled: true},
	}
}

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB"})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// testServer wires a handler over a fresh in-memory catalog.
type testServer struct {
	handler  *Handler
	db       *database.DB
	selector *stubSelector
	notifier *recordingNotifier
	http     http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := setupTestDB(t)
	selector := &stubSelector{result: &selection.Result{Items: []models.Cooler{}}}
	notifier := &recordingNotifier{}

	cfg := testConfig()
	h := NewHandler(selector, db, cfg)
	h.SetNotifier(notifier)

	mw := NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&cfg.Security))
	return &testServer{
		handler:  h,
		db:       db,
		selector: selector,
		notifier: notifier,
		http:     NewRouter(h, mw).SetupChi(),
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)
	return rec
}

// envelope decodes the response, unmarshaling data into dst when non-nil.
func envelope(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) APIResponse {
	t.Helper()
	var raw struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *APIError       `json:"error"`
		Meta    *APIMeta        `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode envelope %q: %v", rec.Body.String(), err)
	}
	if dst != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, dst); err != nil {
			t.Fatalf("decode data %s: %v", raw.Data, err)
		}
	}
	return APIResponse{Success: raw.Success, Error: raw.Error, Meta: raw.Meta}
}

func f64(v float64) *float64 { return &v }
