// Package addrrange models a contiguous window of memory or register addresses.
//
// An AddrRange is a base address plus a size in bytes. The optional address
// width only changes how addresses are printed. Ranges are values: they are
// never modified after construction and can be compared with == or used as
// map keys.
package addrrange

import (
	"fmt"
	"iter"
	"strings"

	"github.com/nbiotcloud/icdutil-go/address"
	"github.com/nbiotcloud/icdutil-go/bytesize"
	"github.com/nbiotcloud/icdutil-go/internalerror"
	"github.com/nbiotcloud/icdutil-go/util"
	"github.com/pkg/errors"
)

// AddrRange covers size bytes starting at base. The zero value is not a
// valid range; use New, NewWithWidth, FromInts or Parse.
type AddrRange struct {
	base  address.Address
	size  uint64
	width uint
}

func New(base address.Address, size uint64) (AddrRange, error) {
	return NewWithWidth(base, size, 0)
}

// NewWithWidth creates a range whose addresses are printed zero-padded to
// width bits. A width of 0 means unpadded.
func NewWithWidth(base address.Address, size uint64, width uint) (AddrRange, error) {
	if size == 0 {
		return AddrRange{}, errors.Wrapf(internalerror.InvalidRange, "size of range at %s is zero", base.Hex(width))
	}
	// EndAddr must stay inside the address space
	if _, ok := base.CheckedAdd(size - 1); !ok {
		return AddrRange{}, errors.Wrapf(internalerror.InvalidRange, "range %s+%d exceeds the address space", base.Hex(width), size)
	}
	return AddrRange{
		base:  base,
		size:  size,
		width: width,
	}, nil
}

func FromInts(base uint64, size int64, width uint) (AddrRange, error) {
	if size <= 0 {
		return AddrRange{}, errors.Wrapf(internalerror.InvalidRange, "size %d is not positive", size)
	}
	return NewWithWidth(address.AddressFromU64(base), uint64(size), width)
}

// Parse creates a range with a human readable size such as "4 KB" or "256 bytes".
func Parse(base uint64, size string, width uint) (AddrRange, error) {
	if strings.HasPrefix(strings.TrimSpace(size), "-") {
		return AddrRange{}, errors.Wrapf(internalerror.InvalidRange, "size %q is negative", size)
	}
	n, err := bytesize.Parse(size)
	if err != nil {
		return AddrRange{}, err
	}
	return NewWithWidth(address.AddressFromU64(base), n, width)
}

//panic
func MustNew(base address.Address, size uint64, width uint) AddrRange {
	r, err := NewWithWidth(base, size, width)
	if err != nil {
		panic(err)
	}
	return r
}

func (r AddrRange) Base() address.Address {
	return r.base
}

func (r AddrRange) Size() uint64 {
	return r.size
}

func (r AddrRange) AddrWidth() uint {
	return r.width
}

// EndAddr is the last address inside the range.
func (r AddrRange) EndAddr() address.Address {
	return r.base.Add(address.AddressFromU64(r.size - 1))
}

// NextAddr is the first address after the range.
// It panics if the range ends at the top of the address space.
func (r AddrRange) NextAddr() address.Address {
	return r.EndAddr().Add(1)
}

// CheckedNextAddr is NextAddr, with ok false if the range ends at the top of
// the address space.
func (r AddrRange) CheckedNextAddr() (next address.Address, ok bool) {
	return r.EndAddr().CheckedAdd(1)
}

func (r AddrRange) Contains(value address.Address) bool {
	return r.base <= value && value <= r.EndAddr()
}

// Addresses yields every address of the range in ascending order.
func (r AddrRange) Addresses() iter.Seq[address.Address] {
	return func(yield func(address.Address) bool) {
		end := r.EndAddr()
		for a := r.base; ; a++ {
			if !yield(a) || a == end {
				return
			}
		}
	}
}

// IsOverlapping reports whether r and other share at least one address.
// Adjacent ranges do not overlap.
func (r AddrRange) IsOverlapping(other AddrRange) bool {
	if r.base < other.base {
		// other starts right of r
		return r.EndAddr() >= other.base
	}
	return r.base <= other.EndAddr()
}

// Intersect returns the addresses common to r and other. The result keeps the
// address width of r. ok is false if the ranges do not overlap.
func (r AddrRange) Intersect(other AddrRange) (intersect AddrRange, ok bool) {
	base := address.AddressFromU64(util.Max(r.base.AsU64(), other.base.AsU64()))
	end := address.AddressFromU64(util.Min(r.EndAddr().AsU64(), other.EndAddr().AsU64()))
	if end < base {
		return AddrRange{}, false
	}
	return AddrRange{
		base:  base,
		size:  end.Sub(base).AsU64() + 1,
		width: r.width,
	}, true
}

func (r AddrRange) Equal(other AddrRange) bool {
	return r == other
}

// String renders the range as base-end(size), e.g. 0x1000-0x10FF(256 bytes).
func (r AddrRange) String() string {
	return fmt.Sprintf("%s-%s(%s)", r.base.Hex(r.width), r.EndAddr().Hex(r.width), bytesize.Format(r.size))
}

// GoString renders the range constructor style, e.g.
// AddrRange(0x00001000, '256 bytes', addrwidth=32).
func (r AddrRange) GoString() string {
	var aw string
	if r.width != 0 {
		aw = fmt.Sprintf(", addrwidth=%d", r.width)
	}
	return fmt.Sprintf("AddrRange(%s, '%s'%s)", r.base.Hex(r.width), bytesize.Format(r.size), aw)
}
