// Package encoding implements the payload encodings of the sample codec.
//
// Gorilla is the XOR float compression from Facebook's Gorilla paper
// (https://www.vldb.org/pvldb/vol8/p1816-teller.pdf). It suits sample columns
// well because grade-like survey data repeats a handful of values:
//
//   - first value: 64 bits verbatim
//   - unchanged value: a single 0 bit
//   - changed value inside the previous meaningful-bit window: "10" and the
//     window bits
//   - otherwise: "11", 5 bits of leading zeros, 6 bits of window length
//     minus one, and the window bits
//
// Bits are written most significant first; the final byte is zero padded.
package encoding
