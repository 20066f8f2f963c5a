package ports

import "time"

// Clock supplies the current time so freshness checks are deterministic in tests.
type Clock interface {
	Now() time.Time
}
