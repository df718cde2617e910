package notch

import "testing"

func BenchmarkBinMask(b *testing.B) {
	l := DefaultPowerLines()
	freqs := uniformFreqs(20, 0.25, 4097)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := l.BinMask(freqs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheckFrequency(b *testing.B) {
	l := DefaultPowerLines()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.CheckFrequency(1200.05)
	}
}
