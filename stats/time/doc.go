// Package time computes time-domain statistics of a bounded sample series
// and renders it as a clipped ASCII bar graph.
//
// RMS is the plain root-mean-square sqrt(mean(x²)); the DC component is not
// removed, so a constant series reports its own magnitude as RMS.
package time
