package address

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nbiotcloud/icdutil-go/internalerror"
	"github.com/pkg/errors"
)

const (
	MAX_ADDRESS = math.MaxUint64
)

// Address is a byte address. Arithmetic is checked against the 64bit address space.
type Address uint64

func AddressFromU64(val uint64) Address {
	return Address(val)
}

func (a Address) AsU64() uint64 {
	return uint64(a)
}

//panic
func (left Address) Add(right Address) Address {
	sum, ok := left.CheckedAdd(uint64(right))
	if !ok {
		panic("Address: add overflows")
	}
	return sum
}

func (left Address) CheckedAdd(n uint64) (Address, bool) {
	if n > MAX_ADDRESS-uint64(left) {
		return 0, false
	}
	return Address(uint64(left) + n), true
}

//panic
func (left Address) Sub(right Address) Address {
	if uint64(right) > uint64(left) {
		panic("Address: sub is wrong")
	}
	return Address(uint64(left) - uint64(right))
}

// Hex renders the address as 0x-prefixed uppercase hex. A non-zero width pads
// the digits to cover width bits.
func (a Address) Hex(width uint) string {
	digits := int((width + 3) / 4)
	return fmt.Sprintf("0x%0*X", digits, uint64(a))
}

func (a Address) String() string {
	return a.Hex(0)
}

// Parse accepts decimal and 0x/0o/0b prefixed literals.
func Parse(s string) (Address, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, errors.Wrapf(internalerror.InvalidInput, "address %q: %v", s, err)
	}
	return Address(n), nil
}
