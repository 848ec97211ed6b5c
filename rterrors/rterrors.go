// Package rterrors defines the typed error taxonomy used across this
// module, so callers can errors.Is/errors.As instead of matching strings.
package rterrors

import "errors"

var (
	// ErrUnsupportedHash is returned when a hash routine name is not in the registry.
	ErrUnsupportedHash = errors.New("unsupported hash routine")
	// ErrUnsupportedCharset is returned when a charset name is not in the registry.
	ErrUnsupportedCharset = errors.New("unsupported charset")
	// ErrLengthOutOfRange covers min_length <= 0, max_length >= 10, or min > max.
	ErrLengthOutOfRange = errors.New("plaintext length out of range")
	// ErrTableIndexNegative is returned when table_index < 0.
	ErrTableIndexNegative = errors.New("table index must be >= 0")
	// ErrChainLengthInvalid is returned when chain_length <= 0.
	ErrChainLengthInvalid = errors.New("chain length must be > 0")
	// ErrNumChainsInvalid is returned when numchains == 0.
	ErrNumChainsInvalid = errors.New("numchains must be > 0")
	// ErrTableTooLarge is returned when numchains >= 2^27 (2 GiB file limit).
	ErrTableTooLarge = errors.New("numchains too large: would exceed 2 GiB file limit")
	// ErrAlreadyFinished is informational: resume detected a complete table.
	ErrAlreadyFinished = errors.New("table already finished")
	// ErrPlainSpaceOverflow is returned when charset_length^max_length does
	// not fit a uint64 — it could never be written into the 16-byte record
	// format anyway, so this is caught at context construction time.
	ErrPlainSpaceOverflow = errors.New("plaintext space too large to index with a 64-bit integer")
)
