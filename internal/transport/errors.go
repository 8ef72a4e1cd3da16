package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

const (
	postTxOnChainFailed = "PostTxOnChainFailed"

	statusClientClosed = 499
)

// NetworkError is a request that never got a response.
type NetworkError struct {
	Operation string
	URL       string
	// Status is the synthetic status used for retry decisions.
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: error making request to %s [%d]: %v", e.Operation, e.URL, e.Status, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx response.
type APIError struct {
	Operation string
	Method    string
	URL       string
	Status    int
	Body      []byte
	Message   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", e.Operation, e.Method, e.URL, e.Message)
}

// L1TxSubmitError is an APIError whose body reports a failed on-chain
// submission (tag PostTxOnChainFailed).
type L1TxSubmitError struct {
	APIError
	// Tag is postTxError.tag from the body, empty when absent.
	Tag string
}

func (e *L1TxSubmitError) Error() string {
	return e.APIError.Error()
}

func (e *L1TxSubmitError) Unwrap() error { return &e.APIError }

type submitFailureBody struct {
	Tag         string `json:"tag"`
	PostTxError *struct {
		Tag string `json:"tag"`
	} `json:"postTxError"`
}

func newResponseError(operation, method, target string, status int, body []byte) error {
	apiErr := APIError{
		Operation: operation,
		Method:    method,
		URL:       target,
		Status:    status,
		Body:      body,
	}
	if len(body) == 0 {
		apiErr.Message = fmt.Sprintf("api error response [%d]", status)
		return &apiErr
	}
	apiErr.Message = fmt.Sprintf("api error response [%d]: %s", status, body)

	var failure submitFailureBody
	if err := json.Unmarshal(body, &failure); err != nil || failure.Tag != postTxOnChainFailed {
		return &apiErr
	}
	submitErr := &L1TxSubmitError{APIError: apiErr}
	if failure.PostTxError != nil && failure.PostTxError.Tag != "" {
		submitErr.Tag = failure.PostTxError.Tag
		submitErr.Message = fmt.Sprintf("api error response [%d]: %s", status, submitErr.Tag)
	}
	return submitErr
}

func newNetworkError(operation, target string, err error) *NetworkError {
	return &NetworkError{
		Operation: operation,
		URL:       target,
		Status:    networkStatus(err),
		Err:       err,
	}
}

// networkStatus maps a transport failure onto the status a proxy would have
// answered with.
func networkStatus(err error) int {
	var netErr net.Error
	var opErr *net.OpError
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosed
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return http.StatusRequestTimeout
	case errors.As(err, &opErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether a request that failed with status may be repeated:
// 429 and every 5xx except 503.
func Retryable(status int) bool {
	return status == http.StatusTooManyRequests ||
		(status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable)
}

// StatusOf extracts the response or synthetic status carried by err.
func StatusOf(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, true
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Status, true
	}
	return 0, false
}
