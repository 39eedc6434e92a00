package engine

// SelectMedian returns the median of buf, partially sorting buf in place.
//
// Selection sort runs only up to the middle element, which keeps the cost at
// roughly n²/4 comparisons without any allocation. For an even length the
// two middle values are averaged. An empty slice yields 0.
func SelectMedian(buf []float32) float32 {
	n := len(buf)
	if n == 0 {
		return 0
	}

	mid := n / medianHalfDivisor
	for i := 0; i <= mid; i++ {
		lo := i
		for j := i + 1; j < n; j++ {
			if buf[j] < buf[lo] {
				lo = j
			}
		}
		buf[i], buf[lo] = buf[lo], buf[i]
	}

	if n%medianHalfDivisor == 1 {
		return buf[mid]
	}
	return (buf[mid-1] + buf[mid]) / medianHalfDivisor
}
