package mlbstats

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultBaseURI is the public MLB StatsAPI endpoint.
const DefaultBaseURI = "https://statsapi.mlb.com/api/v1/"

// StatsAPIScrapper wraps the MLB StatsAPI game and schedule endpoints. Every
// method pair has a required-arguments form and a fields-filter form; the
// fields form always emits a fields= parameter, even for an empty list.
//
// All methods return a *Response directly. Non-2xx statuses and transport
// timeouts are not surfaced as errors; callers check Response.StatusCode.
type StatsAPIScrapper interface {
	GameFeed(gamePk string) *Response
	GameFeedFields(gamePk string, fields []string) *Response
	Linescore(gamePk string) *Response
	LinescoreFields(gamePk string, fields []string) *Response
	PlayByPlay(gamePk string) *Response
	PlayByPlayFields(gamePk string, fields []string) *Response
	Schedule() *Response
	ScheduleFields(fields []string) *Response
	ScheduleDate(date string) *Response
	ScheduleDateFields(date string, fields []string) *Response
	ScheduleRange(startDate, endDate string) *Response
	ScheduleRangeFields(startDate, endDate string, fields []string) *Response
	Close()
}

type statsClient struct {
	baseURI    string
	httpClient *http.Client
}

func (s *statsClient) GameFeed(gamePk string) *Response {
	return s.call(fmt.Sprint("game/", gamePk, "/feed/live")).unwrap()
}

func (s *statsClient) GameFeedFields(gamePk string, fields []string) *Response {
	return s.call(fmt.Sprint("game/", gamePk, "/feed/live?fields=", strings.Join(fields, ","))).unwrap()
}

func (s *statsClient) Linescore(gamePk string) *Response {
	return s.call(fmt.Sprint("game/", gamePk, "/linescore")).unwrap()
}

func (s *statsClient) LinescoreFields(gamePk string, fields []string) *Response {
	return s.call(fmt.Sprint("game/", gamePk, "/linescore?fields=", strings.Join(fields, ","))).unwrap()
}

func (s *statsClient) PlayByPlay(gamePk string) *Response {
	return s.call(fmt.Sprint("game/", gamePk, "/playByPlay")).unwrap()
}

func (s *statsClient) PlayByPlayFields(gamePk string, fields []string) *Response {
	return s.call(fmt.Sprint("game/", gamePk, "/playByPlay?fields=", strings.Join(fields, ","))).unwrap()
}

func (s *statsClient) Schedule() *Response {
	return s.call("schedule?sportId=1").unwrap()
}

func (s *statsClient) ScheduleFields(fields []string) *Response {
	return s.call(fmt.Sprint("schedule?sportId=1&fields=", strings.Join(fields, ","))).unwrap()
}

func (s *statsClient) ScheduleDate(date string) *Response {
	return s.call(fmt.Sprint("schedule?sportId=1&date=", date)).unwrap()
}

func (s *statsClient) ScheduleDateFields(date string, fields []string) *Response {
	return s.call(fmt.Sprint("schedule?sportId=1&date=", date, "&fields=", strings.Join(fields, ","))).unwrap()
}

func (s *statsClient) ScheduleRange(startDate, endDate string) *Response {
	return s.call(fmt.Sprint("schedule?sportId=1&startDate=", startDate, "&endDate=", endDate)).unwrap()
}

func (s *statsClient) ScheduleRangeFields(startDate, endDate string, fields []string) *Response {
	return s.call(fmt.Sprint("schedule?sportId=1&startDate=", startDate, "&endDate=", endDate, "&fields=", strings.Join(fields, ","))).unwrap()
}

func (s *statsClient) Close() {
	s.httpClient = nil
}

// NewMlbStatsClient builds a client against baseURI. Game pks and dates are
// concatenated into the path verbatim; callers supply already-safe values.
// No request timeout is set here, the transport default applies.
func NewMlbStatsClient(baseURI string) StatsAPIScrapper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxConnsPerHost = 100
	t.MaxIdleConnsPerHost = 100

	return &statsClient{
		baseURI: baseURI,
		httpClient: &http.Client{
			Transport: t,
		},
	}
}
