package mlbstats

import (
	"errors"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "request timed out" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func newClientWithTransport(rt roundTripperFunc) *statsClient {
	return &statsClient{
		baseURI:    "http://statsapi.test/",
		httpClient: &http.Client{Transport: rt},
	}
}

func TestUnwrapIsIdentityForEveryOutcome(t *testing.T) {
	response := &Response{StatusCode: http.StatusOK, Body: map[string]interface{}{"gamePk": 529572.0}}

	for _, tag := range []outcomeTag{outcomeSuccess, outcomeError, outcomeTimeout} {
		out := outcome{tag: tag, response: response}
		if out.unwrap() != response {
			t.Fatalf("expected unwrap to return the carried response for tag %v", tag)
		}
	}
}

func TestCallTagsNon2xxAsErrorAndKeepsResponseShape(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       ioutil.NopCloser(strings.NewReader(`{"message": "Object not found", "messageNumber": 10}`)),
			Header:     make(http.Header),
		}, nil
	})
	client := newClientWithTransport(rt)

	out := client.call("game/1/feed/live")

	if out.tag != outcomeError {
		t.Fatalf("expected error outcome, got %v", out.tag)
	}
	response := out.unwrap()
	if response != out.response {
		t.Fatalf("expected unwrap to hand back the carried response")
	}
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
	if response.Body["message"] != "Object not found" {
		t.Fatalf("expected error body to pass through, got %v", response.Body)
	}
}

func TestCallTagsTimeoutsAndCarriesFailureResponse(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, timeoutError{}
	})
	client := newClientWithTransport(rt)

	out := client.call("game/1/linescore")

	if out.tag != outcomeTimeout {
		t.Fatalf("expected timeout outcome, got %v", out.tag)
	}
	response := out.unwrap()
	if response.StatusCode != 0 {
		t.Fatalf("expected status 0 for transport failure, got %d", response.StatusCode)
	}
	message, ok := response.Body["message"].(string)
	if !ok || !strings.Contains(message, "request timed out") {
		t.Fatalf("expected failure message in body, got %v", response.Body)
	}
}

func TestCallTagsConnectionFailuresAsError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	client := newClientWithTransport(rt)

	out := client.call("schedule?sportId=1")

	if out.tag != outcomeError {
		t.Fatalf("expected error outcome, got %v", out.tag)
	}
	if out.unwrap().StatusCode != 0 {
		t.Fatalf("expected status 0 for transport failure, got %d", out.unwrap().StatusCode)
	}
}

func TestClientMethodsReturnErrorResponsesLikeSuccesses(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       ioutil.NopCloser(strings.NewReader(`{"message": "upstream down"}`)),
			Header:     make(http.Header),
		}, nil
	})
	client := newClientWithTransport(rt)

	response := client.GameFeed("529572")

	if response == nil {
		t.Fatalf("expected a response for an HTTP error, got nil")
	}
	if response.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", response.StatusCode)
	}
	if response.Body["message"] != "upstream down" {
		t.Fatalf("expected error body to pass through, got %v", response.Body)
	}
}

func TestCallKeepsRawBodyWhenNotJSON(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       ioutil.NopCloser(strings.NewReader("boom")),
			Header:     make(http.Header),
		}, nil
	})
	client := newClientWithTransport(rt)

	out := client.call("game/1/playByPlay")

	if out.tag != outcomeSuccess {
		t.Fatalf("expected success outcome for a 200, got %v", out.tag)
	}
	response := out.unwrap()
	if len(response.Body) != 0 {
		t.Fatalf("expected empty decoded body for non-JSON payload, got %v", response.Body)
	}
	if string(response.raw) != "boom" {
		t.Fatalf("expected raw body to be preserved, got %q", response.raw)
	}
}
