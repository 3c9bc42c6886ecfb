package api

import "errors"

// ErrTimeout reports that the transport deadline expired before the server
// responded. Callers classify with errors.Is.
var ErrTimeout = errors.New("request timeout: The server is not responding")

// APIError is a non-success HTTP response. Detail carries the server's
// `detail` field when the error body was valid JSON, otherwise the HTTP
// status text.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// IsTimeout reports whether err was caused by the transport deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// errorBody is the JSON shape of FastAPI error responses.
type errorBody struct {
	Detail string `json:"detail"`
}
