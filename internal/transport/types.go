package transport

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records one outcome per logical request, retries included.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
