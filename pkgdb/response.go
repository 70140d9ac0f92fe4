package pkgdb

import (
	"encoding/json"
	"fmt"
)

// Payload is a raw JSON object returned by the server. Fields are passed
// through unmodified; the client only inspects the error envelope.
type Payload map[string]any

// DecodeResponse parses a server response body and applies the pkgdb
// error envelope convention once, at the HTTP boundary: a payload with a
// falsy "status" field is a failure carrying "message" and, for partial
// mass branches, an "extras" list of package names. Every other payload
// is returned as-is.
func DecodeResponse(data []byte) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, ErrValue{Msg: fmt.Sprintf("server did not send a JSON object: %s", err)}
	}
	status, ok := payload["status"]
	if !ok || !isFalsy(status) {
		return payload, nil
	}
	srvErr := ErrServer{Name: "PackageDBError"}
	if msg, ok := payload["message"].(string); ok {
		srvErr.Msg = msg
	}
	if extras, ok := payload["extras"].([]any); ok {
		for _, e := range extras {
			if name, ok := e.(string); ok {
				srvErr.Extras = append(srvErr.Extras, name)
			}
		}
	}
	return nil, srvErr
}

// isFalsy mirrors the truth test the server's TurboGears code applies to
// the status field. JSON numbers decode as float64.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == ""
	case float64:
		return val == 0
	default:
		return false
	}
}
