package ports

import (
	"context"
	"time"
)

// CardReader abstracts the physical RFID reader. Implementations return
// domain.ErrReadTimeout when no card is presented within the timeout and
// domain.ErrDeviceError on transport failure. The gateway never retries;
// the caller decides whether to ask the holder to tap again.
type CardReader interface {
	ReadUID(ctx context.Context, timeout time.Duration) (string, error)
}
