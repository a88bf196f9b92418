package domain

import "errors"

// ErrBalanceNotFound indicates that the owner has no balance row.
var ErrBalanceNotFound = errors.New("balance not found")

// Balance holds the owner's starting account balance, independent of
// expenses. At most one row exists per owner.
type Balance struct {
	ID     int32  `json:"id,omitempty"`
	Amount string `json:"amount"` // decimal string with exactly 2 fractional digits
	Owner  string `json:"owner,omitempty"`
}
