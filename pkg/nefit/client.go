// Package nefit provides a client for Nefit / Bosch Easy thermostats.
//
// The vendor backend speaks XMPP with encrypted payloads. Client doesn't implement that protocol itself:
// it talks to a local bridge over HTTP, which owns the XMPP session and exposes the thermostat's
// resource tree under /bridge. Creating a client typically looks like this:
//
//	c := nefit.New("http://localhost:3000", nefit.Credentials{
//	    SerialNumber: "123456789",
//	    AccessKey:    "your-access-key",
//	    Password:     "your-password",
//	})
//	if err := c.Connect(ctx); err != nil {
//	    // handle error
//	}
//	defer func() { _ = c.Disconnect(ctx) }()
//
// Once connected, the following calls are supported:
//
//	GetStatus:      get the thermostat's UI status (room temperature, set point, user mode, ...)
//	GetYearTotal:   get the yearly gas usage
//	GetDisplayCode: get the boiler's display & cause code
//	Get / Put:      read or write any resource in the thermostat's resource tree
//	SetTemperature: set a manual temperature override
package nefit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Credentials identify the thermostat to the vendor backend.
type Credentials struct {
	SerialNumber string `json:"serialNumber"`
	AccessKey    string `json:"accessKey"`
	Password     string `json:"password"`
}

// Client calls the Nefit bridge.
type Client struct {
	baseURL     string
	credentials Credentials
	httpClient  *http.Client
	logger      *slog.Logger
}

// New returns a Client for the bridge at baseURL.
func New(baseURL string, credentials Credentials, options ...Option) *Client {
	c := Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		httpClient:  http.DefaultClient,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(&c)
	}
	return &c
}

// Connect asks the bridge to set up a session with the vendor backend for the client's thermostat.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.call(ctx, http.MethodPost, "/connect", c.credentials, nil); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	c.logger.Debug("connected", "serial", c.credentials.SerialNumber)
	return nil
}

// Disconnect tears down the bridge session.
func (c *Client) Disconnect(ctx context.Context) error {
	defer c.httpClient.CloseIdleConnections()
	if err := c.call(ctx, http.MethodPost, "/disconnect", nil, nil); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	c.logger.Debug("disconnected")
	return nil
}

// Get reads the resource at path.
func (c *Client) Get(ctx context.Context, path string) (Value, error) {
	var v Value
	err := c.call(ctx, http.MethodGet, bridgePath(path), nil, &v)
	return v, err
}

// Put writes value to the resource at path.
func (c *Client) Put(ctx context.Context, path string, value any) error {
	return c.call(ctx, http.MethodPost, bridgePath(path), Value{Value: value}, nil)
}

// GetStatus returns the thermostat's UI status.
func (c *Client) GetStatus(ctx context.Context) (Status, error) {
	var response struct {
		Value uiStatus `json:"value"`
	}
	if err := c.call(ctx, http.MethodGet, bridgePath(UIStatusPath), nil, &response); err != nil {
		return Status{}, err
	}
	return response.Value.decode()
}

// GetYearTotal returns the gas usage for the current year.
func (c *Client) GetYearTotal(ctx context.Context) (Value, error) {
	return c.Get(ctx, YearTotalPath)
}

// GetDisplayCode returns the code currently shown on the boiler's display, with its cause code.
func (c *Client) GetDisplayCode(ctx context.Context) (DisplayCode, error) {
	displayCode, err := c.Get(ctx, DisplayCodePath)
	if err != nil {
		return DisplayCode{}, fmt.Errorf("display code: %w", err)
	}
	causeCode, err := c.Get(ctx, CauseCodePath)
	if err != nil {
		return DisplayCode{}, fmt.Errorf("cause code: %w", err)
	}
	code := DisplayCode{Code: displayCode.String(), Cause: causeCode.String()}
	code.Description = displayCodeDescriptions[code.Code]
	return code, nil
}

// SetTemperature sets a manual temperature override.
func (c *Client) SetTemperature(ctx context.Context, temperature float64) error {
	for _, path := range []struct {
		path  string
		value any
	}{
		{path: ManualRoomTemperaturePath, value: temperature},
		{path: ManualOverrideStatusPath, value: "on"},
		{path: ManualOverrideTemperaturePath, value: temperature},
	} {
		if err := c.Put(ctx, path.path, path.value); err != nil {
			return fmt.Errorf("%s: %w", path.path, err)
		}
	}
	return nil
}

// HTTPError is returned when the bridge responds with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return e.Status + ": " + e.Body
	}
	return e.Status
}

func (c *Client) call(ctx context.Context, method string, path string, request any, response any) error {
	var body io.Reader
	if request != nil {
		payload, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return nil
	default:
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: strings.TrimSpace(string(errBody))}
	}

	if response == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	c.logger.Debug("call done", "method", method, "path", path)
	return nil
}

func bridgePath(path string) string {
	return "/bridge" + path
}
