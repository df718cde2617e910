// Package notch manages frequency-domain notch lists for stochastic
// gravitational-wave background searches.
//
// A [Notch] is a frequency interval excluded from analysis because of known
// instrumental or environmental contamination; a [List] is an ordered
// collection of notches supporting membership queries, conservative
// bin-masking of sampled spectra, construction from domain generators
// (power-line harmonics, combs, pulsar injections) and persistence to a
// delimited text format.
//
// The bin mask is deliberately wider than per-point containment: a bin is
// flagged when any notch overlaps the window reaching one bin to either
// side, so that spectral leakage from a contaminated neighbour cannot slip
// through. See [List.BinMask].
package notch
