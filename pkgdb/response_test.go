package pkgdb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeResponse(t *testing.T) {
	// setup testing table (tt) and create subtest for each entry
	for _, tt := range []struct {
		name       string
		desc       string
		body       string
		wantMsg    string
		wantExtras []string
		wantErr    error
	}{
		{
			name: "status true",
			desc: "A truthy status is a success and the payload passes through",
			body: `{"status": true, "name": "bash"}`,
		},
		{
			name: "no status",
			desc: "Absence of status denotes success",
			body: `{"name": "bash", "owner": "alice"}`,
		},
		{
			name:    "status false",
			desc:    "A falsy status carries the server message",
			body:    `{"status": false, "message": "no such package"}`,
			wantErr: ErrServer{},
			wantMsg: "no such package",
		},
		{
			name:       "partial mass branch",
			desc:       "The extras list rides along on the error",
			body:       `{"status": false, "message": "partial", "extras": ["pkgA", "pkgB"]}`,
			wantErr:    ErrServer{},
			wantMsg:    "partial",
			wantExtras: []string{"pkgA", "pkgB"},
		},
		{
			name:    "null status",
			desc:    "JSON null counts as falsy",
			body:    `{"status": null, "message": "gone"}`,
			wantErr: ErrServer{},
			wantMsg: "gone",
		},
		{
			name:    "zero status",
			desc:    "A numeric zero counts as falsy",
			body:    `{"status": 0, "message": "gone"}`,
			wantErr: ErrServer{},
			wantMsg: "gone",
		},
		{
			name: "numeric status",
			desc: "A non-zero number counts as truthy",
			body: `{"status": 1, "name": "bash"}`,
		},
		{
			name:    "not json",
			desc:    "A non-JSON body is a value error, not a server error",
			body:    `<html>proxy error</html>`,
			wantErr: ErrValue{},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			// this will only be printed if run in verbose mode or if test fails
			t.Logf("Desc: %s", tt.desc)
			payload, err := DecodeResponse([]byte(tt.body))
			if tt.wantErr == nil {
				assert.NoErrorf(t, err, "expected no error but got %v", err)
				assert.NotNil(t, payload)
				return
			}
			assert.Nil(t, payload)
			assert.Errorf(t, err, "expected %v but got %v", tt.wantErr, err)
			assert.IsType(t, tt.wantErr, err)
			var srvErr ErrServer
			if errors.As(err, &srvErr) {
				assert.Equal(t, tt.wantMsg, srvErr.Msg)
				assert.Equal(t, tt.wantExtras, srvErr.Extras)
			}
		})
	}
}

func TestDecodeResponsePassthrough(t *testing.T) {
	payload, err := DecodeResponse([]byte(`{"status": true, "name": "bash", "owner": "alice"}`))
	assert.NoError(t, err)
	assert.Equal(t, Payload{"status": true, "name": "bash", "owner": "alice"}, payload)
}
