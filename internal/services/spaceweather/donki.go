// Package spaceweather fetches recent space weather events from NASA's
// DONKI API (Database Of Notifications, Knowledge, Information).
package spaceweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
)

// WindowDays is how far back the report looks.
const WindowDays = 30

// Service is the DONKI API client.
type Service struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a DONKI client. NASA hands out DEMO_KEY for unauthenticated
// use, so apiKey is always non-empty in practice.
func New(apiKey string) *Service {
	return &Service{
		baseURL: "https://api.nasa.gov/DONKI",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Flare is one solar flare event (FLR feed).
type Flare struct {
	FlareID   string `json:"flrID"`
	BeginTime string `json:"beginTime"`
	PeakTime  string `json:"peakTime"`
	ClassType string `json:"classType"`
	Link      string `json:"link"`
}

// CME is one coronal mass ejection event (CME feed).
type CME struct {
	ActivityID string `json:"activityID"`
	StartTime  string `json:"startTime"`
	Note       string `json:"note"`
	Link       string `json:"link"`
}

// Storm is one geomagnetic storm event (GST feed).
type Storm struct {
	GstID     string `json:"gstID"`
	StartTime string `json:"startTime"`
	KpIndex   []struct {
		ObservedTime string  `json:"observedTime"`
		KpIndex      float64 `json:"kpIndex"`
	} `json:"allKpIndex"`
	Link string `json:"link"`
}

// Notification is one DONKI bulletin (notifications feed).
type Notification struct {
	MessageType  string `json:"messageType"`
	MessageID    string `json:"messageID"`
	MessageIssue string `json:"messageIssueTime"`
	MessageBody  string `json:"messageBody"`
	MessageURL   string `json:"messageURL"`
}

// Report bundles the four feeds over the report window. A feed that failed
// to load is present but empty; FeedErrors names the failures so clients
// can flag partial data.
type Report struct {
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date"`
	Flares        []Flare        `json:"flares"`
	CMEs          []CME          `json:"cmes"`
	Storms        []Storm        `json:"storms"`
	Notifications []Notification `json:"notifications"`
	FeedErrors    []string       `json:"feed_errors,omitempty"`
	FetchedAt     time.Time      `json:"fetched_at"`
}

// Fetch loads all four feeds concurrently over the last WindowDays days.
// Individual feed failures are tolerated: the report ships with whatever
// loaded, and only a total failure (every feed down) returns an error.
func (s *Service) Fetch(ctx context.Context) (*Report, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -WindowDays)

	report := &Report{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		FetchedAt: end,
	}

	// Each goroutine writes to its own field, so no mutex is needed;
	// failed feeds record their name for the partial-data flag.
	failures := make([]string, 4)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.fetchFeed(gctx, "FLR", report.StartDate, report.EndDate, &report.Flares); err != nil {
			log.Printf("⚠️  DONKI FLR feed failed: %v", err)
			failures[0] = "flares"
		}
		return nil
	})
	g.Go(func() error {
		if err := s.fetchFeed(gctx, "CME", report.StartDate, report.EndDate, &report.CMEs); err != nil {
			log.Printf("⚠️  DONKI CME feed failed: %v", err)
			failures[1] = "cmes"
		}
		return nil
	})
	g.Go(func() error {
		if err := s.fetchFeed(gctx, "GST", report.StartDate, report.EndDate, &report.Storms); err != nil {
			log.Printf("⚠️  DONKI GST feed failed: %v", err)
			failures[2] = "storms"
		}
		return nil
	})
	g.Go(func() error {
		if err := s.fetchFeed(gctx, "notifications", report.StartDate, report.EndDate, &report.Notifications); err != nil {
			log.Printf("⚠️  DONKI notifications feed failed: %v", err)
			failures[3] = "notifications"
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, f := range failures {
		if f != "" {
			report.FeedErrors = append(report.FeedErrors, f)
		}
	}
	if len(report.FeedErrors) == 4 {
		return nil, fmt.Errorf("all DONKI feeds failed")
	}
	return report, nil
}

// fetchFeed GETs one DONKI feed and decodes it into out (a pointer to a
// slice of the feed's event type).
func (s *Service) fetchFeed(ctx context.Context, feed, startDate, endDate string, out any) error {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	q.Set("api_key", s.apiKey)
	if feed == "notifications" {
		q.Set("type", "all")
	}

	reqURL := fmt.Sprintf("%s/%s?%s", s.baseURL, feed, q.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("DONKI request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("DONKI %s returned %d: %s", feed, resp.StatusCode, string(body))
	}

	// DONKI returns an empty body (not []) when a feed has no events.
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s feed: %w", feed, err)
	}
	return nil
}

// Summarize renders a report into plain text for the trending-topics
// prompt.
func (r *Report) Summarize() string {
	s := fmt.Sprintf("Space weather events from %s to %s:\n", r.StartDate, r.EndDate)
	s += fmt.Sprintf("- %d solar flares", len(r.Flares))
	for i, f := range r.Flares {
		if i >= 5 {
			break
		}
		s += fmt.Sprintf(" [%s at %s]", f.ClassType, f.PeakTime)
	}
	s += fmt.Sprintf("\n- %d coronal mass ejections\n", len(r.CMEs))
	s += fmt.Sprintf("- %d geomagnetic storms\n", len(r.Storms))
	s += fmt.Sprintf("- %d notifications\n", len(r.Notifications))
	return s
}
