package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrValidation  = errors.New("validation failed")
	ErrReadTimeout = errors.New("no card presented before timeout")
	ErrDeviceError = errors.New("card reader transport failure")
)

// CardBoundError reports that a card UID is already bound to another
// unexpired pass. It carries the existing holder's details so the caller
// can decide whether to resubmit with force.
type CardBoundError struct {
	UID        string    `json:"uid"`
	HolderName string    `json:"holder_name"`
	Kind       Kind      `json:"kind"`
	PassType   PassType  `json:"pass_type"`
	Expiry     time.Time `json:"expiry"`
}

func (e *CardBoundError) Error() string {
	return fmt.Sprintf("card %s already bound to %s (%s %s, valid until %s)",
		e.UID, e.HolderName, e.Kind, e.PassType, e.Expiry.Format(time.RFC3339))
}
