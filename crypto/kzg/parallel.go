package kzg

import "runtime"

// minTermsPerWorker avoids spawning goroutines for a handful of terms.
const minTermsPerWorker = 8

type span struct {
	start, end int
}

// partition splits n terms into at most workers contiguous spans.
func partition(n, workers int) []span {
	if n <= 0 {
		return nil
	}
	chunks := min(max(workers, 1), max(n/minTermsPerWorker, 1))
	size := (n + chunks - 1) / chunks
	spans := make([]span, 0, chunks)
	for start := 0; start < n; start += size {
		spans = append(spans, span{start: start, end: min(start+size, n)})
	}
	return spans
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
