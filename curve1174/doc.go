// Package curve1174 specializes package modular's generic arithmetic to
// the single 251-bit prime q = 2^251 - 9 used by Curve1174. It replaces
// the generic division-based Mod with a fast reduction exploiting
// 2^256 ≡ 288 (mod q), and replaces the generic Pow with ladders
// hand-fitted to the fixed exponents (q-1)/2, (q+1)/4 and q-2 that the
// Elligator 1 map (package elligator) calls on every point conversion.
package curve1174
