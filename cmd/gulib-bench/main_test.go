package main

import "testing"

func TestBenchmarksRunWithoutPanicking(t *testing.T) {
	for _, b := range benchmarks() {
		b.run(100)
	}
}
