// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rest

import (
	"encoding/json"
	"testing"

	snaperr "snapcli/cli/internal/errors"

	"github.com/stretchr/testify/require"
)

func TestResponseNarrowing(t *testing.T) {
	ok := &Response{Envelope: Envelope{StatusCode: 200, Result: json.RawMessage(`{"name":"core"}`)}}
	async := &Response{Envelope: Envelope{StatusCode: 202, Change: "42"}}
	noResult := &Response{Envelope: Envelope{StatusCode: 200, Result: json.RawMessage(`null`)}}
	noChange := &Response{Envelope: Envelope{StatusCode: 202}}

	raw, err := ok.ResultRaw(200)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"core"}`, string(raw))

	var v struct{ Name string }
	require.NoError(t, ok.DecodeResult(200, &v))
	require.Equal(t, "core", v.Name)

	var wrongShape []string
	require.Equal(t, snaperr.MalformedResponse, snaperr.KindOf(ok.DecodeResult(200, &wrongShape)))

	_, err = ok.ResultRaw(202)
	require.Equal(t, snaperr.MalformedResponse, snaperr.KindOf(err))

	id, err := async.ChangeID(202)
	require.NoError(t, err)
	require.Equal(t, "42", id)

	_, err = async.ChangeID(200)
	require.Equal(t, snaperr.MalformedResponse, snaperr.KindOf(err))

	_, err = noResult.ResultRaw(200)
	require.Equal(t, snaperr.MalformedResponse, snaperr.KindOf(err))

	_, err = noChange.ChangeID(202)
	require.Equal(t, snaperr.MalformedResponse, snaperr.KindOf(err))

	var nilResp *Response
	require.Equal(t, snaperr.MalformedResponse, snaperr.KindOf(nilResp.Expect(200)))
}

func TestDaemonErrorOf(t *testing.T) {
	kind, msg := daemonErrorOf([]byte(`{"type":"error","status-code":401,"result":{"message":"access denied","kind":"login-required"}}`))
	require.Equal(t, "login-required", kind)
	require.Equal(t, "access denied", msg)

	kind, msg = daemonErrorOf([]byte(`not json`))
	require.Empty(t, kind)
	require.Empty(t, msg)

	kind, msg = daemonErrorOf([]byte(`{"status-code":500,"result":["x"]}`))
	require.Empty(t, kind)
	require.Empty(t, msg)
}
