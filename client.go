package projectlists

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"

	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"
)

// DefaultEndpoint is where the project service is expected to listen.
const DefaultEndpoint = "http://localhost:3000"

var (
	// ErrTransport is returned when a request could not be sent or its response could not be read.
	ErrTransport = errors.New("transport failure")

	// ErrStatusCode is returned in case the response from the API contains a non-2xx status code.
	ErrStatusCode = errors.New("unhandled status code")

	// ErrDecode is returned when a response body does not decode into the expected shape.
	ErrDecode = errors.New("malformed response")
)

// ClientOption configures a Client built with NewClient.
type ClientOption func(*Client) error

// WithEndpoint is a client option to set the endpoint when building a client with NewClient. This is meant to be
// used in tests only.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) error {
		c.endpoint = endpoint
		return nil
	}
}

// WithWireLog is a client option to be passed to NewClient in order to log all requests and responses to the
// specified log file. Useful for debugging the client itself, shouldn't be needed in normal operation.
func WithWireLog(pathname string) ClientOption {
	return func(c *Client) error {
		f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err == nil {
			c.wlog = f
			c.closers = append(c.closers, f)
		}
		return err
	}
}

// WithHTTPClient replaces http.DefaultClient for all calls made by the client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) error {
		c.hc = hc
		return nil
	}
}

// Client talks to the project service. Every method except FullProject makes exactly one HTTP request.
type Client struct {
	endpoint string

	hc *http.Client

	// If non-nil, log all requests and responses to this file, one per line, in JSON format.
	wlog io.Writer

	// Files opened by options, released by Close.
	closers []io.Closer
}

// NewClient creates a new client for the service at DefaultEndpoint, unless overridden by an option.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		endpoint: DefaultEndpoint,
		hc:       http.DefaultClient,
		wlog:     ioutil.Discard,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}

// Close releases the files opened by the client's options, such as the wire log. Requests can still be made
// afterwards, but they won't be logged to the wire log.
func (c *Client) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	c.wlog = ioutil.Discard
	return first
}

// wireEntry is one line of the wire log.
type wireEntry struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	Method    string `json:"method,omitempty"`
	URL       string `json:"url,omitempty"`
	Status    int    `json:"status,omitempty"`
	Body      string `json:"body,omitempty"`
}

func (c *Client) logWire(entry wireEntry) {
	b, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = c.wlog.Write(b)
	_, _ = c.wlog.Write([]byte("\n"))
}

// do sends a request to the given path, which may include a query string, and returns the body of a 2xx
// response. The path is appended to the endpoint as is.
func (c *Client) do(op string, method string, path string, payload interface{}) ([]byte, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	req, err := http.NewRequest(method, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	var requestID string
	if u, err := uuid.NewV4(); err == nil {
		requestID = u.String()
		req.Header.Set("X-Request-Id", requestID)
	}
	logEntry := log.WithFields(log.Fields{
		"op":        op,
		"requestID": requestID,
	})
	c.logWire(wireEntry{Type: "request", RequestID: requestID, Method: method, URL: req.URL.String(), Body: string(body)})
	logEntry.WithFields(log.Fields{
		"method": method,
		"url":    req.URL.String(),
	}).Debug("Sending request")

	r, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logEntry.WithField("cause", err).Warning("Could not close response body")
		}
	}()
	b, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%s, read body: %w: %w", op, ErrTransport, err)
	}
	c.logWire(wireEntry{Type: "response", RequestID: requestID, Status: r.StatusCode, Body: string(b)})
	if r.StatusCode < 200 || r.StatusCode > 299 {
		logEntry.WithFields(log.Fields{
			"code": r.StatusCode,
			"text": string(b),
		}).Debug("Unhandled response status code")
		return nil, fmt.Errorf("%s: %d: %w", op, r.StatusCode, ErrStatusCode)
	}
	logEntry.WithField("code", r.StatusCode).Debug("Received response")
	return b, nil
}

// getJSON issues a GET request and decodes the response body into v.
func (c *Client) getJSON(op string, path string, v interface{}) error {
	b, err := c.do(op, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%s, unmarshal: %w: %w", op, ErrDecode, err)
	}
	return nil
}
