package stats

import "math"

// Summary holds the integer statistics reported for one module, all in
// microseconds.
type Summary struct {
	Average uint64
	Stdev   uint64
	Median  uint64
	Min     uint64
	Max     uint64
}

// Derive computes the report statistics from a sorted sample. An empty
// sample yields all zeros.
//
// Median takes the element at index len/2: for even lengths that is the
// upper of the two central elements, not their mean. Average is the
// floored integer mean. Stdev is the floored square root of the sample
// variance (n-1 denominator) and is zero for fewer than two samples.
// These exact semantics are part of the report format.
func Derive(data []uint64) Summary {
	var s Summary
	n := uint64(len(data))
	if n == 0 {
		return s
	}

	s.Min = data[0]
	s.Max = data[len(data)-1]
	s.Median = data[len(data)/2]

	var sum uint64
	for _, d := range data {
		sum += d
	}
	s.Average = sum / n

	if n > 1 {
		var variance uint64
		for _, d := range data {
			var diff uint64
			if d > s.Average {
				diff = d - s.Average
			} else {
				diff = s.Average - d
			}
			variance += diff * diff
		}
		variance /= n - 1
		s.Stdev = uint64(math.Sqrt(float64(variance)))
	}
	return s
}
