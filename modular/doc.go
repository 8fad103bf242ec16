// Package modular implements generic modular arithmetic over package
// bigint's fixed-capacity integers for an arbitrary modulus: reduction,
// add/sub/mul modulo m, extended Euclidean inverse, square-and-multiply
// exponentiation, and the quadratic-residue character. It mirrors the
// division and GCD shape of the chunker package's polynomial field
// arithmetic, generalized from F_2[X] to the integers modulo m.
//
// Package curve1174 specializes this layer for the single modulus q,
// replacing Pow and Mod with routines that exploit q's specific bit
// pattern; this package remains the reference implementation any modulus
// can fall back to.
package modular
