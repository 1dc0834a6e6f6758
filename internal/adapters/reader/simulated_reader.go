package reader

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

// SimulatedReader stands in for the hardware during development and
// testing: it returns a sequentially generated placeholder UID
// immediately, without touching a serial port.
type SimulatedReader struct {
	seq atomic.Uint64
}

var _ ports.CardReader = (*SimulatedReader)(nil)

func NewSimulatedReader() *SimulatedReader {
	return &SimulatedReader{}
}

func (r *SimulatedReader) ReadUID(ctx context.Context, timeout time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("SIM-%06d", r.seq.Add(1)), nil
}
