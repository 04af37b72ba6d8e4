// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rest

import (
	"net/http"
	"strings"

	"snapcli/cli/internal/auth"
	snaperr "snapcli/cli/internal/errors"
)

// APIPrefix is the path prefix every daemon endpoint lives under.
const APIPrefix = "/v2/"

// Request describes a single call to the daemon. It is built fresh for each
// call and not modified once handed to Client.Do.
type Request struct {
	// Auth is attached as an Authorization header when it carries a macaroon.
	Auth *auth.Credential
	// Method is http.MethodGet or http.MethodPost.
	Method string
	// Path is the target path, including the /v2/ prefix.
	Path string
	// Body is the serialized JSON body; required for POST, forbidden for GET.
	Body []byte
}

// Get builds an unauthenticated GET request.
func Get(path string) Request {
	return Request{Method: http.MethodGet, Path: path}
}

// Post builds a POST request carrying body.
func Post(path string, body []byte) Request {
	return Request{Method: http.MethodPost, Path: path, Body: body}
}

// WithAuth returns a copy of r that carries c.
func (r Request) WithAuth(c auth.Credential) Request {
	r.Auth = &c
	return r
}

// authorized reports whether an Authorization header will be sent.
func (r Request) authorized() bool {
	return r.Auth != nil && r.Auth.Valid()
}

// Validate checks the descriptor before any I/O takes place.
func (r Request) Validate() error {
	switch r.Method {
	case http.MethodGet:
		if len(r.Body) != 0 {
			return snaperr.New(snaperr.InvalidArgument, "GET request must not carry a body")
		}
	case http.MethodPost:
		if len(r.Body) == 0 {
			return snaperr.New(snaperr.InvalidArgument, "POST request requires a body")
		}
	default:
		return snaperr.Newf(snaperr.InvalidArgument, "unsupported method %q", r.Method)
	}
	if !strings.HasPrefix(r.Path, APIPrefix) {
		return snaperr.Newf(snaperr.InvalidArgument, "path %q must start with %s", r.Path, APIPrefix)
	}
	return nil
}
