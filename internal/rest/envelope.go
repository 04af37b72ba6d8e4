// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rest

import (
	"encoding/json"

	snaperr "snapcli/cli/internal/errors"
)

// ResponseType is the envelope type reported by the daemon.
type ResponseType string

const (
	ResponseTypeSync  ResponseType = "sync"
	ResponseTypeAsync ResponseType = "async"
	ResponseTypeError ResponseType = "error"
)

// Envelope is the JSON object the daemon answers every request with.
type Envelope struct {
	Type       ResponseType    `json:"type"`
	StatusCode int             `json:"status-code"`
	StatusText string          `json:"status"`
	Result     json.RawMessage `json:"result"`
	Change     string          `json:"change,omitempty"`
}

// Response is a successfully transported reply: HTTP status 200 or 202 with a
// JSON body that decoded into an Envelope.
type Response struct {
	Envelope
	// HTTPStatus is the status line code, as opposed to Envelope.StatusCode.
	HTTPStatus int
	// Raw is the full response body.
	Raw []byte
}

// daemonError is the result payload of an error envelope.
type daemonError struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// Expect checks that the envelope's status-code equals code.
func (r *Response) Expect(code int) error {
	if r == nil || r.StatusCode != code {
		got := 0
		if r != nil {
			got = r.StatusCode
		}
		return snaperr.Newf(snaperr.MalformedResponse, "malformed response: status-code %d, want %d", got, code)
	}
	return nil
}

// ResultRaw returns the result field after checking the status-code.
func (r *Response) ResultRaw(code int) (json.RawMessage, error) {
	if err := r.Expect(code); err != nil {
		return nil, err
	}
	if len(r.Result) == 0 || string(r.Result) == "null" {
		return nil, snaperr.New(snaperr.MalformedResponse, "malformed response: missing result")
	}
	return r.Result, nil
}

// DecodeResult checks the status-code and decodes the result field into v.
func (r *Response) DecodeResult(code int, v any) error {
	raw, err := r.ResultRaw(code)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return snaperr.Wrap(snaperr.MalformedResponse, "malformed response: decode result", err)
	}
	return nil
}

// ChangeID checks the status-code and returns the change field.
func (r *Response) ChangeID(code int) (string, error) {
	if err := r.Expect(code); err != nil {
		return "", err
	}
	if r.Change == "" {
		return "", snaperr.New(snaperr.MalformedResponse, "malformed response: missing change")
	}
	return r.Change, nil
}

// decodeEnvelope parses body. Invalid JSON is MalformedJSON; valid JSON that
// is not an envelope object is MalformedResponse.
func decodeEnvelope(body []byte) (Envelope, error) {
	var env Envelope
	if !json.Valid(body) {
		return env, snaperr.New(snaperr.MalformedJSON, "response body is not valid JSON")
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return env, snaperr.Wrap(snaperr.MalformedResponse, "malformed response envelope", err)
	}
	return env, nil
}

// daemonErrorOf extracts the daemon's error kind and message from an error
// envelope. Bodies that are not error envelopes yield empty strings.
func daemonErrorOf(body []byte) (kind, message string) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Result) == 0 {
		return "", ""
	}
	var de daemonError
	if err := json.Unmarshal(env.Result, &de); err != nil {
		return "", ""
	}
	return de.Kind, de.Message
}
