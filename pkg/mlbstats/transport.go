package mlbstats

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net"
	"net/http"
)

type outcomeTag int

const (
	outcomeSuccess outcomeTag = iota
	outcomeError
	outcomeTimeout
)

type outcome struct {
	tag      outcomeTag
	response *Response
}

// unwrap returns the carried response no matter which tag the attempt got.
// Identity on all three outcomes, so error and timeout responses reach the
// caller in the same shape as successes.
func (o outcome) unwrap() *Response {
	return o.response
}

func (c *statsClient) call(path string) outcome {
	req, err := http.NewRequest(
		http.MethodGet,
		fmt.Sprint(c.baseURI, path),
		nil,
	)
	if err != nil {
		log.Printf("error creating HTTP request for path %s: %v\n", path, err)
		return outcome{tag: outcomeError, response: failureResponse(err)}
	}

	req.Header.Add("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return outcome{tag: outcomeTimeout, response: failureResponse(err)}
		}
		return outcome{tag: outcomeError, response: failureResponse(err)}
	}
	defer res.Body.Close()

	raw, err := ioutil.ReadAll(res.Body)
	if err != nil {
		log.Printf("error reading response body for path %s: %v\n", path, err)
		return outcome{tag: outcomeError, response: failureResponse(err)}
	}

	body := make(map[string]interface{})
	if err := json.Unmarshal(raw, &body); err != nil {
		log.Printf("error deserializing response body for path %s\n", path)
	}

	tag := outcomeSuccess
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		tag = outcomeError
	}

	return outcome{
		tag: tag,
		response: &Response{
			StatusCode: res.StatusCode,
			Body:       body,
			raw:        raw,
		},
	}
}

func failureResponse(err error) *Response {
	return &Response{
		StatusCode: 0,
		Body:       map[string]interface{}{"message": err.Error()},
	}
}
