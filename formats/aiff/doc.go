// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes and encodes 16-bit AIFF files using
// github.com/go-audio/aiff. Inputs that cannot seek are buffered in memory
// before decoding.
package aiff
