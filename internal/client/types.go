package client

import (
	"context"
	"net/url"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Requester is the JSON transport of one endpoint.
	Requester interface {
		BaseURL() string
		Get(ctx context.Context, operation, path string, query url.Values, out any) error
		Post(ctx context.Context, operation, path string, query url.Values, body, out any) error
	}
	// WaitMetrics records how polling waits end.
	WaitMetrics interface {
		ObserveWait(kind string, err error, started time.Time)
	}
)
