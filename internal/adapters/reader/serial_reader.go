package reader

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

const (
	baudRate = 9600

	// minUIDLength is the card UID length the reader firmware emits.
	// A frame is complete at a terminator or once this many bytes arrive.
	minUIDLength = 10

	readChunk = 64
)

// SerialReader reads card UIDs from the physical RFID reader over a
// serial line. The reader is a singleton resource, so reads are
// serialized: only one is in flight at a time.
type SerialReader struct {
	mu       sync.Mutex
	portName string
	mode     *serial.Mode
}

var _ ports.CardReader = (*SerialReader)(nil)

func NewSerialReader(portName string) *SerialReader {
	return &SerialReader{
		portName: portName,
		mode:     &serial.Mode{BaudRate: baudRate},
	}
}

// ReadUID accumulates bytes until a terminator (CR or LF) appears or the
// UID length threshold is reached. The trimmed accumulated bytes are the
// UID. Returns domain.ErrReadTimeout if no card shows up in time.
func (r *SerialReader) ReadUID(ctx context.Context, timeout time.Duration) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	port, err := serial.Open(r.portName, r.mode)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", domain.ErrDeviceError, r.portName, err)
	}
	defer port.Close()

	if err := port.SetReadTimeout(timeout); err != nil {
		return "", fmt.Errorf("%w: set timeout: %v", domain.ErrDeviceError, err)
	}

	deadline := time.Now().Add(timeout)
	buf := make([]byte, readChunk)
	var acc strings.Builder

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrDeviceError, err)
		}

		n, err := port.Read(buf)
		if err != nil {
			return "", fmt.Errorf("%w: read: %v", domain.ErrDeviceError, err)
		}
		if n == 0 {
			// The port read timeout elapsed with no data.
			return "", domain.ErrReadTimeout
		}
		acc.Write(buf[:n])

		frame := acc.String()
		if i := strings.IndexAny(frame, "\r\n"); i >= 0 {
			if uid := strings.TrimSpace(frame[:i]); uid != "" {
				return uid, nil
			}
			acc.Reset()
			acc.WriteString(strings.TrimLeft(frame[i:], "\r\n"))
		} else if uid := strings.TrimSpace(frame); len(uid) >= minUIDLength {
			return uid, nil
		}

		if time.Now().After(deadline) {
			return "", domain.ErrReadTimeout
		}
	}
}
