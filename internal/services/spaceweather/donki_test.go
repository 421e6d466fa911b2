package spaceweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestService points the client at a fake DONKI server.
func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := New("TEST_KEY")
	s.baseURL = srv.URL
	return s
}

func TestFetchAllFeeds(t *testing.T) {
	s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("api_key"); got != "TEST_KEY" {
			t.Errorf("api_key = %q, want TEST_KEY", got)
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/FLR"):
			w.Write([]byte(`[{"flrID":"f1","classType":"X1.0","peakTime":"2026-08-15T12:00Z"}]`))
		case strings.HasSuffix(r.URL.Path, "/CME"):
			w.Write([]byte(`[{"activityID":"c1"},{"activityID":"c2"}]`))
		case strings.HasSuffix(r.URL.Path, "/GST"):
			w.Write([]byte(`[]`))
		case strings.HasSuffix(r.URL.Path, "/notifications"):
			w.Write([]byte(`[{"messageType":"Report","messageID":"n1"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	report, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(report.Flares) != 1 || report.Flares[0].ClassType != "X1.0" {
		t.Errorf("flares = %+v", report.Flares)
	}
	if len(report.CMEs) != 2 {
		t.Errorf("got %d CMEs, want 2", len(report.CMEs))
	}
	if len(report.Storms) != 0 {
		t.Errorf("got %d storms, want 0", len(report.Storms))
	}
	if len(report.Notifications) != 1 {
		t.Errorf("got %d notifications, want 1", len(report.Notifications))
	}
	if len(report.FeedErrors) != 0 {
		t.Errorf("unexpected feed errors: %v", report.FeedErrors)
	}
}

func TestFetchToleratesPartialFailure(t *testing.T) {
	s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/GST") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))

	report, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed on a single bad feed: %v", err)
	}
	if len(report.FeedErrors) != 1 || report.FeedErrors[0] != "storms" {
		t.Errorf("feed errors = %v, want [storms]", report.FeedErrors)
	}
}

func TestFetchFailsWhenAllFeedsDown(t *testing.T) {
	s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	if _, err := s.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch succeeded with every feed down")
	}
}

func TestFetchHandlesEmptyBody(t *testing.T) {
	// DONKI sends a zero-length body instead of [] for quiet periods.
	s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	report, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(report.Flares) != 0 || len(report.FeedErrors) != 0 {
		t.Errorf("empty feeds mishandled: %+v", report)
	}
}

func TestSummarize(t *testing.T) {
	r := &Report{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
		Flares:    []Flare{{ClassType: "M2.3", PeakTime: "2026-08-10T03:00Z"}},
		CMEs:      []CME{{}, {}},
	}
	got := r.Summarize()
	for _, want := range []string{"2026-08-01", "1 solar flares", "M2.3", "2 coronal mass ejections"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
