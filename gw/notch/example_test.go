package notch_test

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gw/gw/notch"
	"github.com/cwbudde/algo-gw/internal/testutil"
)

func ExampleList_CheckFrequency() {
	l := notch.NewList([]notch.Entry{
		{Min: 59.9, Max: 60.1, Description: "Power Lines"},
	})
	fmt.Println(l.CheckFrequency(60))
	fmt.Println(l.CheckFrequency(65))

	// Output:
	// true
	// false
}

func ExampleComb() {
	l := notch.Comb(10, 5, 3, 1, "")
	for _, n := range l.Notches() {
		fmt.Printf("[%g, %g]\n", n.MinimumFrequency, n.MaximumFrequency)
	}

	// Output:
	// [9.5, 10.5]
	// [14.5, 15.5]
	// [19.5, 20.5]
}

// ExampleList_FilterSpectrum masks a mains-contaminated power spectrum: a
// 60 Hz tone sampled at 256 Hz lands in bin 60 of a one-sided 256-point
// spectrum, and the power-line notch drops that bin along with its
// leakage-prone neighbours.
func ExampleList_FilterSpectrum() {
	const (
		sampleRate = 256.0
		fftSize    = 256
		bins       = fftSize/2 + 1
	)

	signal := testutil.DeterministicSine(60, sampleRate, 1, fftSize)
	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		panic(err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		panic(err)
	}

	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	freqs := make([]float64, bins)
	for i := range freqs {
		freqs[i] = float64(i) * sampleRate / fftSize
	}

	lines := notch.PowerLines(60, 1, 0.2)
	keptFreqs, keptPower, err := lines.FilterSpectrum(freqs, power)
	if err != nil {
		panic(err)
	}

	peak := 0.0
	for _, v := range keptPower {
		if v > peak {
			peak = v
		}
	}
	fmt.Printf("kept %d of %d bins\n", len(keptFreqs), bins)
	fmt.Printf("mains peak removed: %v\n", peak < 1e-6*power[60])

	// Output:
	// kept 126 of 129 bins
	// mains peak removed: true
}
