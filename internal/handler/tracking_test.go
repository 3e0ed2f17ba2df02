package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/portfolio/backend/internal/model"
)

type mockVisitorService struct {
	trackFunc func(ctx context.Context, hit model.VisitorHit) error
}

func (m *mockVisitorService) Track(ctx context.Context, hit model.VisitorHit) error {
	if m.trackFunc != nil {
		return m.trackFunc(ctx, hit)
	}
	return nil
}

// TestTrackVisitors_RecordsOneHit checks each request produces exactly
// one hit with the request details.
func TestTrackVisitors_RecordsOneHit(t *testing.T) {
	var hits []model.VisitorHit
	visitors := &mockVisitorService{
		trackFunc: func(ctx context.Context, hit model.VisitorHit) error {
			hits = append(hits, hit)
			return nil
		},
	}
	h := TrackVisitors(visitors)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.RemoteAddr = "203.0.113.7:52000"
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "https://news.example.com/")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(hits) != 1 {
		t.Fatalf("expected one hit, got %d", len(hits))
	}
	hit := hits[0]
	if hit.IPAddress != "203.0.113.7" {
		t.Errorf("expected client address, got %q", hit.IPAddress)
	}
	if hit.Page != "/api/projects" {
		t.Errorf("expected page path, got %q", hit.Page)
	}
	if hit.UserAgent != "Mozilla/5.0" || hit.Referrer != "https://news.example.com/" {
		t.Errorf("unexpected hit %+v", hit)
	}
}

// TestTrackVisitors_FailureDoesNotBlock checks a tracking failure is
// swallowed and the response still succeeds.
func TestTrackVisitors_FailureDoesNotBlock(t *testing.T) {
	visitors := &mockVisitorService{
		trackFunc: func(ctx context.Context, hit model.VisitorHit) error {
			return errors.New("db down")
		},
	}
	h := TrackVisitors(visitors)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	req.RemoteAddr = "203.0.113.7:52000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 despite tracking failure, got %d", rec.Code)
	}
}

// TestTrackVisitors_ForwardedAddress checks the tracked address honors
// X-Forwarded-For behind the trusted proxy.
func TestTrackVisitors_ForwardedAddress(t *testing.T) {
	var gotIP string
	visitors := &mockVisitorService{
		trackFunc: func(ctx context.Context, hit model.VisitorHit) error {
			gotIP = hit.IPAddress
			return nil
		},
	}
	h := TrackVisitors(visitors)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if gotIP != "203.0.113.7" {
		t.Errorf("expected forwarded address, got %q", gotIP)
	}
}
