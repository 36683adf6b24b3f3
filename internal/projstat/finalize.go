package projstat

import (
	"math"
	"slices"
	"strings"
)

// relPrecision is the number of decimals kept for relative metrics.
const relPrecision = 4

// Finalize sorts the type breakdowns by type name and fills in the relative
// metrics of every entry. It mutates and returns stat.
//
// An empty breakdown has a maximum of zero, and any ratio with a zero
// denominator is reported as zero.
func Finalize(stat *ProjectStat) *ProjectStat {
	slices.SortFunc(stat.Files, func(a, b FileTypeStat) int {
		return strings.Compare(a.Type, b.Type)
	})
	slices.SortFunc(stat.Source, func(a, b SourceTypeStat) int {
		return strings.Compare(a.Type, b.Type)
	})

	var (
		amountMax uint32
		sizeMax   uint64
		countMax  uint64
	)

	for _, f := range stat.Files {
		amountMax = max(amountMax, f.Amount)
		sizeMax = max(sizeMax, f.Size)
	}

	for _, s := range stat.Source {
		countMax = max(countMax, s.Count)
	}

	for i := range stat.Files {
		f := &stat.Files[i]
		f.AmountRelSum = ratio(uint64(f.Amount), uint64(stat.Main.Files))
		f.AmountRelMax = ratio(uint64(f.Amount), uint64(amountMax))
		f.SizeRelSum = ratio(f.Size, stat.Main.TotalSize)
		f.SizeRelMax = ratio(f.Size, sizeMax)
	}

	for i := range stat.Source {
		s := &stat.Source[i]
		s.CountRelSum = ratio(s.Count, stat.Main.SourceLines)
		s.CountRelMax = ratio(s.Count, countMax)
	}

	return stat
}

// ratio divides value by total, rounded to relPrecision decimals. A zero total yields zero.
func ratio(value, total uint64) float64 {
	if total == 0 {
		return 0
	}

	return round(float64(value)/float64(total), relPrecision)
}

// round rounds v half away from zero to the given number of decimals.
func round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))

	return math.Round(v*scale) / scale
}
