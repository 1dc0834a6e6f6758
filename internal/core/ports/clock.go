package ports

import "time"

// Clock supplies "now" to every component that compares validity windows.
// Injecting it (instead of calling time.Now directly) keeps expiry logic
// deterministic in tests and lets the admin date-override work.
type Clock interface {
	Now() time.Time
}
