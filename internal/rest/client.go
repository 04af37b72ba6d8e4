// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package rest is the transport to the snap daemon. It performs exactly one
// HTTP exchange over the daemon's Unix socket per call, attaches the macaroon
// Authorization header when a credential is supplied, and turns the reply into
// either a decoded Envelope or a typed error.
//
// The package knows nothing about snaps or interfaces; callers check the
// envelope's status-code and pick the field they need.
package rest

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"time"

	snaperr "snapcli/cli/internal/errors"
	"snapcli/cli/internal/logging"

	"github.com/pterm/pterm"
)

// DefaultSocketPath is where snapd listens.
const DefaultSocketPath = "/run/snapd.socket"

// Client issues requests to the daemon.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	// httpClient dials a fresh socket connection for every request
	httpClient *http.Client
	// socketPath is the daemon socket, kept for diagnostics
	socketPath string
	// logger receives request traces; nil disables logging
	logger *pterm.Logger
}

// New creates a Client that talks to the daemon on socketPath.
// An empty socketPath selects DefaultSocketPath. logger may be nil.
func New(socketPath string, logger *pterm.Logger) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, address string) (net.Conn, error) {
					return (&net.Dialer{}).DialContext(ctx, "unix", socketPath)
				},
				DisableKeepAlives:  true,
				DisableCompression: true,
			},
		},
		socketPath: socketPath,
		logger:     logger,
	}
}

// SocketPath returns the daemon socket this client dials.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// Do performs one exchange. It returns a Response only when the HTTP status is
// 200 or 202 and the body is a non-empty JSON envelope.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var body io.Reader
	if r.Method == http.MethodPost {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, "http://localhost"+r.Path, body)
	if err != nil {
		return nil, snaperr.Wrap(snaperr.InvalidArgument, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.Method == http.MethodPost {
		// net/http writes Content-Length from this field, never from Header.
		req.ContentLength = int64(len(r.Body))
	}
	if r.authorized() {
		req.Header.Set("Authorization", r.Auth.Header())
	}

	c.debug("snapd request", "method", r.Method, "path", r.Path, "authorized", r.authorized())
	if len(r.Body) > 0 {
		c.trace("snapd request body", "body", logging.Mask(string(r.Body)))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.debug("snapd request failed", "path", r.Path, "error", err)
		return nil, snaperr.Wrap(snaperr.Transport, r.Method+" "+r.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, snaperr.Wrap(snaperr.Transport, "read response", err)
	}
	c.debug("snapd response", "path", r.Path, "status", resp.StatusCode, "bytes", len(raw), "elapsed", time.Since(start).String())

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		kind, message := daemonErrorOf(raw)
		return nil, snaperr.NewStatus(resp.StatusCode, raw, kind, message)
	}
	if len(raw) == 0 {
		return nil, snaperr.New(snaperr.EmptyResponse, "empty response")
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &Response{Envelope: env, HTTPStatus: resp.StatusCode, Raw: raw}, nil
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, c.logger.Args(args...))
}

func (c *Client) trace(msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Trace(msg, c.logger.Args(args...))
}
