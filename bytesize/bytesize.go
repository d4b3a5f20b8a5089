// Package bytesize renders and parses byte counts such as "256 bytes" or "4 KB".
//
// Units are binary: 1 KB is 1024 bytes. Format only uses a unit when it divides
// the count exactly, so Parse(Format(n)) == n for every n.
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/nbiotcloud/icdutil-go/internalerror"
	"github.com/pkg/errors"
)

var units = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

type unit struct {
	suffix string
	size   uint64
}

var (
	byteUnit = unit{"B", humanize.Byte}
	kibUnit  = unit{"KiB", humanize.KiByte}
	mibUnit  = unit{"MiB", humanize.MiByte}
	gibUnit  = unit{"GiB", humanize.GiByte}
	tibUnit  = unit{"TiB", humanize.TiByte}
	pibUnit  = unit{"PiB", humanize.PiByte}
	eibUnit  = unit{"EiB", humanize.EiByte}
)

// KB and friends are binary here, humanize.ParseBytes reads them as SI.
var unitNames = map[string]unit{
	"":      byteUnit,
	"b":     byteUnit,
	"byte":  byteUnit,
	"bytes": byteUnit,
	"k":     kibUnit,
	"kb":    kibUnit,
	"kib":   kibUnit,
	"m":     mibUnit,
	"mb":    mibUnit,
	"mib":   mibUnit,
	"g":     gibUnit,
	"gb":    gibUnit,
	"gib":   gibUnit,
	"t":     tibUnit,
	"tb":    tibUnit,
	"tib":   tibUnit,
	"p":     pibUnit,
	"pb":    pibUnit,
	"pib":   pibUnit,
	"e":     eibUnit,
	"eb":    eibUnit,
	"eib":   eibUnit,
}

func Format(n uint64) string {
	if n == 1 {
		return "1 byte"
	}
	if n == 0 {
		return "0 bytes"
	}
	value, name := n, ""
	for _, u := range units {
		if value%1024 != 0 {
			break
		}
		value >>= 10
		name = u
	}
	if name == "" {
		return fmt.Sprintf("%d bytes", n)
	}
	return fmt.Sprintf("%d %s", value, name)
}

func Parse(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.Wrap(internalerror.InvalidInput, "empty byte size")
	}
	if strings.HasPrefix(s, "-") {
		return 0, errors.Wrapf(internalerror.InvalidInput, "negative byte size %q", s)
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return n, nil
	}

	end := strings.IndexFunc(s, func(r rune) bool {
		return !(unicode.IsDigit(r) || r == '.' || r == ',')
	})
	if end == 0 {
		return 0, errors.Wrapf(internalerror.InvalidInput, "byte size %q has no number", s)
	}
	if end < 0 {
		end = len(s)
	}
	number := strings.Replace(s[:end], ",", "", -1)
	name := strings.ToLower(strings.TrimSpace(s[end:]))
	u, ok := unitNames[name]
	if !ok {
		return 0, errors.Wrapf(internalerror.InvalidInput, "byte size %q has unknown unit %q", s, name)
	}

	if !strings.Contains(number, ".") {
		n, err := strconv.ParseUint(number, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(internalerror.InvalidInput, "byte size %q: %v", s, err)
		}
		if n > math.MaxUint64/u.size {
			return 0, errors.Wrapf(internalerror.InvalidInput, "byte size %q is too large", s)
		}
		return n * u.size, nil
	}

	// fractional counts, e.g. "1.5 KB", must still be whole bytes
	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, errors.Wrapf(internalerror.InvalidInput, "byte size %q: %v", s, err)
	}
	if f*float64(u.size) != math.Trunc(f*float64(u.size)) {
		return 0, errors.Wrapf(internalerror.InvalidInput, "byte size %q is not a whole number of bytes", s)
	}
	n, err := humanize.ParseBytes(number + " " + u.suffix)
	if err != nil {
		return 0, errors.Wrapf(internalerror.InvalidInput, "byte size %q: %v", s, err)
	}
	return n, nil
}
