package report

import (
	"math"
	"strconv"
)

// DefaultPrecision is the number of decimals HumanSize keeps by default.
const DefaultPrecision = 2

//nolint:gochecknoglobals // Unit table
var sizeUnits = []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// HumanSize scales bytes by powers of 1024 and appends the unit suffix,
// for example 1536 becomes "1.5kB". Trailing zeros are dropped.
func HumanSize(bytes uint64, precision int) string {
	size := float64(bytes)
	unit := 0

	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	scale := math.Pow(10, float64(precision))
	size = math.Round(size*scale) / scale

	return strconv.FormatFloat(size, 'f', -1, 64) + sizeUnits[unit] + "B"
}
