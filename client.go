package tan

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production TAN open-data endpoint.
const DefaultBaseURL = "https://open.tan.fr/ewp"

const (
	defaultConnectTimeout = 5 * time.Second
	defaultRequestTimeout = 10 * time.Second
	bodyExcerptLimit      = 512
)

// Client queries the TAN open-data API. It holds only immutable
// configuration; the underlying http.Client pools connections across
// calls, so a single Client may be shared by any number of goroutines.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Options configures a Client. The zero value selects the production base
// URL and the default timeouts.
type Options struct {
	BaseURL        string
	ConnectTimeout time.Duration // dial deadline, default 5s
	RequestTimeout time.Duration // whole-call deadline, default 10s

	// HTTPClient replaces the constructed transport entirely; the timeout
	// fields are ignored when it is set. Intended for tests.
	HTTPClient *http.Client
}

// NewClient creates a client for the TAN open-data API.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	hc := opts.HTTPClient
	if hc == nil {
		connectTimeout := opts.ConnectTimeout
		if connectTimeout <= 0 {
			connectTimeout = defaultConnectTimeout
		}
		requestTimeout := opts.RequestTimeout
		if requestTimeout <= 0 {
			requestTimeout = defaultRequestTimeout
		}
		hc = &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		}
	}
	return &Client{baseURL: baseURL, httpClient: hc}
}

// NearbyStops returns the stops close to a coordinate. An empty list means
// no stop nearby; it is not an error.
func (c *Client) NearbyStops(ctx context.Context, coord Coordinate) ([]Stop, error) {
	if err := validateQuery(coord); err != nil {
		return nil, err
	}
	var stops []Stop
	if err := c.get(ctx, epNearbyStops.path(coord.Latitude, coord.Longitude), &stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// AllStops returns every stop of the network. The snapshot may be large.
func (c *Client) AllStops(ctx context.Context) ([]Stop, error) {
	var stops []Stop
	if err := c.get(ctx, epAllStops.path(), &stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// ScheduleForStop returns today's timetable for one line at one stop in
// one direction.
func (c *Client) ScheduleForStop(ctx context.Context, stop, line string, direction Direction) (*StopSchedule, error) {
	q := ScheduleQuery{Stop: stop, Line: line, Direction: direction}
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	var sched StopSchedule
	path := epSchedule.path(q.Stop, q.Line, strconv.Itoa(int(q.Direction)))
	if err := c.get(ctx, path, &sched); err != nil {
		return nil, err
	}
	return &sched, nil
}

// ScheduleForStopOnDate is ScheduleForStop for an explicit calendar date
// (YYYY-MM-DD). A date outside the service horizon yields a timetable with
// no passages, not an error.
func (c *Client) ScheduleForStopOnDate(ctx context.Context, stop, line string, direction Direction, date string) (*StopSchedule, error) {
	q := ScheduleQuery{Stop: stop, Line: line, Direction: direction, Date: date}
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	if q.Date == "" {
		return nil, &ValidationError{Field: "Date", Reason: "failed required constraint"}
	}
	var sched StopSchedule
	path := epScheduleOnDate.path(q.Stop, q.Line, strconv.Itoa(int(q.Direction)), q.Date)
	if err := c.get(ctx, path, &sched); err != nil {
		return nil, err
	}
	return &sched, nil
}

// WaitTimesForStop returns the predicted wait times at a stop, all lines.
func (c *Client) WaitTimesForStop(ctx context.Context, stop string) ([]WaitTime, error) {
	if err := validateStop(stop); err != nil {
		return nil, err
	}
	var waits []WaitTime
	if err := c.get(ctx, epWaitTimes.path(stop), &waits); err != nil {
		return nil, err
	}
	return waits, nil
}

// WaitTimesForStopLimited returns at most count upcoming passages at a
// stop. The upstream may return fewer.
func (c *Client) WaitTimesForStopLimited(ctx context.Context, stop string, count int) ([]WaitTime, error) {
	q := WaitTimeQuery{Stop: stop, Count: count}
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	var waits []WaitTime
	path := epWaitTimesLimited.path(q.Stop, strconv.Itoa(q.Count))
	if err := c.get(ctx, path, &waits); err != nil {
		return nil, err
	}
	return waits, nil
}

// WaitTimesForStopLine returns at most count upcoming passages of one line
// at a stop.
func (c *Client) WaitTimesForStopLine(ctx context.Context, stop string, count int, line string) ([]WaitTime, error) {
	q := WaitTimeQuery{Stop: stop, Count: count, Line: line}
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	if q.Line == "" {
		return nil, &ValidationError{Field: "Line", Reason: "failed required constraint"}
	}
	var waits []WaitTime
	path := epWaitTimesLine.path(q.Stop, strconv.Itoa(q.Count), q.Line)
	if err := c.get(ctx, path, &waits); err != nil {
		return nil, err
	}
	return waits, nil
}

// get issues one GET against the upstream and decodes the JSON body into
// out. The content-type header is not checked: anything that parses as
// JSON is accepted.
func (c *Client) get(ctx context.Context, path string, out any) error {
	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &NetworkError{URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(ctx, u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Status: resp.StatusCode, BodyExcerpt: readExcerpt(resp.Body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(ctx, u, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// classifyTransportError maps a transport failure to the error taxonomy:
// caller cancellation, timeout, or plain network failure.
func classifyTransportError(ctx context.Context, u string, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return &CancelledError{Err: err}
	}
	var ne net.Error
	timeout := (errors.As(err, &ne) && ne.Timeout()) || errors.Is(err, context.DeadlineExceeded)
	return &NetworkError{URL: u, Timeout: timeout, Err: err}
}

func readExcerpt(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, bodyExcerptLimit))
	return strings.TrimSpace(string(b))
}
