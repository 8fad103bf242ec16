// Package elligator implements the Elligator 1 bijection between the
// lower half of Curve1174's prime field, [0, (q-1)/2], and points on the
// curve. It is the top-level entry point of this module: StrToPoint and
// PointToStr are the only operations an external caller needs, and both
// are built entirely out of package curve1174's fast reduction and power
// ladders.
package elligator
