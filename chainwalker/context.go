// Package chainwalker implements the deterministic mapping between a
// plaintext search space and a chain of (index -> plaintext -> hash ->
// index) steps: plainspace arithmetic, the reduction function, and the
// chain stepper (spec §3-§4.5).
//
// A Context is constructed once per generator run from validated
// parameters; its immutable fields (plainspace tables, reduce offset) are
// read-only and freely shared across goroutines. Its mutable fields
// (index, plain, hash) are rewritten on every chain step and must never
// be shared between workers — call Clone for each worker/chain.
package chainwalker

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/tkamucheka/rt-rampage/hashroutine"
	"github.com/tkamucheka/rt-rampage/rterrors"
)

// Context is the unit of work shared between the stepper and reduction
// logic (spec §3's ChainWalkerContext).
type Context struct {
	hashRoutine   hashroutine.Routine
	charset       []byte
	charsetLength int
	minLength     int
	maxLength     int

	// plainSpaceUpToX[i] = sum of charsetLength^k for min_length<=k<=i,
	// 0 for i < min_length. Length maxLength+1.
	plainSpaceUpToX []uint64
	plainSpaceTotal uint64

	tableIndex   int
	reduceOffset uint64

	// mutable, rewritten once per chain step
	index       uint64
	plainLength int
	plain       []byte
	hash        []byte
}

// NewContext builds a Context from validated parameters, precomputing the
// cumulative plainspace table (spec §4.3). minLength and maxLength are
// 1-indexed plaintext lengths, 1 <= minLength <= maxLength <= 9.
func NewContext(routine hashroutine.Routine, charset []byte, minLength, maxLength, tableIndex int) (*Context, error) {
	if len(charset) == 0 {
		return nil, fmt.Errorf("charset must be non-empty: %w", rterrors.ErrUnsupportedCharset)
	}
	if minLength <= 0 || maxLength >= 10 || minLength > maxLength {
		return nil, fmt.Errorf("min_length=%d max_length=%d: %w", minLength, maxLength, rterrors.ErrLengthOutOfRange)
	}
	if tableIndex < 0 {
		return nil, fmt.Errorf("table_index=%d: %w", tableIndex, rterrors.ErrTableIndexNegative)
	}

	c := uint64(len(charset))
	upToX := make([]uint64, maxLength+1)
	upToX[0] = 0
	power := uint64(1) // c^0, bumped to c^i as i increases
	for i := 1; i <= maxLength; i++ {
		var overflow bool
		power, overflow = mulOverflows(power, c)
		if overflow {
			return nil, fmt.Errorf("charset_length=%d max_length=%d: %w", c, maxLength, rterrors.ErrPlainSpaceOverflow)
		}
		contribution := uint64(0)
		if i >= minLength {
			contribution = power
		}
		sum, overflow := addOverflows(upToX[i-1], contribution)
		if overflow {
			return nil, fmt.Errorf("charset_length=%d max_length=%d: %w", c, maxLength, rterrors.ErrPlainSpaceOverflow)
		}
		upToX[i] = sum
	}
	total := upToX[maxLength]
	if total == 0 {
		return nil, fmt.Errorf("plain_space_total is 0 for charset_length=%d min_length=%d max_length=%d: %w",
			c, minLength, maxLength, rterrors.ErrLengthOutOfRange)
	}

	return &Context{
		hashRoutine:     routine,
		charset:         charset,
		charsetLength:   len(charset),
		minLength:       minLength,
		maxLength:       maxLength,
		plainSpaceUpToX: upToX,
		plainSpaceTotal: total,
		tableIndex:      tableIndex,
		reduceOffset:    uint64(tableIndex) * 65536,
		plain:           make([]byte, maxLength),
	}, nil
}

func mulOverflows(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

func addOverflows(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry != 0
}

// Clone returns a Context sharing the immutable parameters with c but
// owning independent mutable state, for use by a single worker/chain.
func (c *Context) Clone() *Context {
	clone := *c
	clone.plain = make([]byte, c.maxLength)
	clone.hash = nil
	clone.plainLength = 0
	return &clone
}

// PlainSpaceTotal returns the total number of enumerable plaintexts.
func (c *Context) PlainSpaceTotal() uint64 { return c.plainSpaceTotal }

// TableIndex returns the configured table index.
func (c *Context) TableIndex() int { return c.tableIndex }

// SetIndex reseeds the context's current index, e.g. at the start of a
// new chain. The caller is responsible for picking start in
// [0, PlainSpaceTotal()).
func (c *Context) SetIndex(start uint64) {
	c.index = start % c.plainSpaceTotal
}

// Index returns the context's current index.
func (c *Context) Index() uint64 { return c.index }

// Plain returns the plaintext resolved by the most recent IndexToPlain
// call, sliced to its actual length.
func (c *Context) Plain() []byte { return c.plain[:c.plainLength] }

// Hash returns the raw digest bytes computed by the most recent
// PlainToHash call.
func (c *Context) Hash() []byte { return c.hash }

// IndexToPlain resolves c.index into (plain_length, plain) per spec §4.3.
func (c *Context) IndexToPlain() {
	index := c.index
	length := c.minLength
	for length < c.maxLength && index >= c.plainSpaceUpToX[length] {
		length++
	}
	c.plainLength = length

	r := index - c.plainSpaceUpToX[length-1]
	cLen := uint64(c.charsetLength)
	for k := length - 1; k >= 0; k-- {
		c.plain[k] = c.charset[r%cLen]
		r /= cLen
	}
}

// PlainToHash hashes c.plain (as resolved by IndexToPlain) and stores the
// raw digest in c.hash (spec §4.4).
func (c *Context) PlainToHash() error {
	digest, err := c.hashRoutine.Digest(c.Plain())
	if err != nil {
		return fmt.Errorf("plain_to_hash: %w", err)
	}
	c.hash = digest
	return nil
}

// HashToIndex implements the reduction function (spec §4.4): takes the
// first 4 bytes of the digest as a little-endian uint32, adds the table's
// reduce offset and the column position, and reduces modulo
// plain_space_total.
func (c *Context) HashToIndex(pos int) {
	r := binary.LittleEndian.Uint32(c.hash[:4])
	c.index = (uint64(r) + c.reduceOffset + uint64(pos)) % c.plainSpaceTotal
}

// Step advances c through chainLength reduction columns starting from
// c.index (the chain's start index), leaving c.index as the chain's end
// index on return (spec §4.5).
func (c *Context) Step(chainLength int) error {
	for pos := 0; pos < chainLength; pos++ {
		c.IndexToPlain()
		if err := c.PlainToHash(); err != nil {
			return err
		}
		c.HashToIndex(pos)
	}
	return nil
}
