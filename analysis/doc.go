// SPDX-License-Identifier: EPL-2.0

// Package analysis measures rendered audio.
//
// # Block statistics
//
// Measure reports peak, RMS, mean, variance and the variance of
// sample-to-sample differences. The last one separates noise colours: white
// noise jumps freely between samples while brown noise drifts.
//
// # Spectrum
//
// An Analyzer averages Hann-windowed power spectra over half-overlapping
// frames (Welch's method) using github.com/MeKo-Christian/algo-fft for the
// transform and github.com/cwbudde/algo-vecmath for the block arithmetic.
// The resulting Spectrum answers centroid and band-energy queries.
//
// # Reports
//
// Analyze drains an audio.Source, folding it to mono, and combines both
// views into a Report. The probe command prints one per file.
package analysis
