package mlbstats

import "encoding/json"

// Response is the single shape every client call returns. The StatsAPI
// transport collapses success, HTTP error and timeout outcomes into this one
// form on purpose: callers inspect StatusCode themselves, nothing is raised.
// Transport failures that never produced an HTTP status carry StatusCode 0 and
// a "message" entry in Body.
type Response struct {
	StatusCode int
	Body       map[string]interface{}
	raw        []byte
}

// DecodeInto unmarshals the raw response body into a typed structure such as
// ScheduleData or GameFeedData.
func (r *Response) DecodeInto(v interface{}) error {
	return json.Unmarshal(r.raw, v)
}
