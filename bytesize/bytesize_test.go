package bytesize

import (
	"testing"

	"github.com/nbiotcloud/icdutil-go/internalerror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0 bytes", Format(0))
	assert.Equal(t, "1 byte", Format(1))
	assert.Equal(t, "6 bytes", Format(6))
	assert.Equal(t, "256 bytes", Format(0x100))
	assert.Equal(t, "1023 bytes", Format(1023))
	assert.Equal(t, "1 KB", Format(1024))
	assert.Equal(t, "4 KB", Format(0x1000))
	assert.Equal(t, "4097 bytes", Format(0x1001))
	assert.Equal(t, "1025 KB", Format(1025*1024))
	assert.Equal(t, "32 KB", Format(0x8000))
	assert.Equal(t, "1 MB", Format(1<<20))
	assert.Equal(t, "3 GB", Format(3<<30))
	assert.Equal(t, "8 EB", Format(1<<63))
}

func TestParse(t *testing.T) {
	for s, want := range map[string]uint64{
		"1":         1,
		"0x100":     0x100,
		"4096":      4096,
		"1 byte":    1,
		"256 bytes": 256,
		"256 Bytes": 256,
		"256b":      256,
		"4 KB":      4096,
		"4KB":       4096,
		"4 kb":      4096,
		"4 KiB":     4096,
		"4k":        4096,
		"1.5 KB":    1536,
		"0.5 KB":    512,
		"2.0":       2,
		"2 MB":      2 << 20,
		"1 GB":      1 << 30,
		"8 EB":      1 << 63,
		" 16 KB ":   16 << 10,
		"1,024":     1024,
	} {
		n, err := Parse(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, n, s)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "  ", "-1", "-4 KB", "KB", "4 parsecs", "16 EB", "1.5 bytes", "1.9", "0.3 KB"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
		assert.Equal(t, internalerror.InvalidInput, errors.Cause(err), s)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, n := range []uint64{1, 2, 255, 1024, 4097, 0x8000, 3 << 30, 1<<64 - 1} {
		got, err := Parse(Format(n))
		assert.NoError(t, err)
		assert.Equal(t, n, got, Format(n))
	}
}
