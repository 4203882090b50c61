// Package frequency provides a coarse magnitude spectrum of a short sample
// series, used to point out the dominant periodic component next to the
// time-domain statistics.
package frequency
