// Package bignum implements arbitrary-precision signed integers stored as a
// sign flag and a base-256 magnitude, most significant byte first.
//
// Values are immutable: parsing, conversion from int64 and addition always
// build a new magnitude, so a BigInt can be copied and shared freely.
package bignum
