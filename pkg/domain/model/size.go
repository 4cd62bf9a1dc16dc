package model

import (
	"math"
	"strconv"
)

// ByteSize is a number of bytes that formats itself with binary units
type ByteSize int64

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// String returns the size rounded to two decimals in the largest fitting unit
// up to GB, e.g. "0 B", "1 KB", "1.5 KB".
func (s ByteSize) String() string {
	if s <= 0 {
		return "0 B"
	}

	idx := 0
	for n := s; n >= 1024 && idx < len(sizeUnits)-1; n /= 1024 {
		idx++
	}

	v := float64(s) / math.Pow(1024, float64(idx))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[idx]
}
