// Package bigint implements a fixed-capacity sign-magnitude multi-word
// integer: construction from hex/native words, comparison, add/sub/shift,
// schoolbook and diagonal-optimized multiplication, and Knuth Algorithm D
// division. It has no notion of a modulus; see package modular for that
// layer, and package curve1174 for the Curve1174-specialized fast reduction
// built on top of it.
package bigint
