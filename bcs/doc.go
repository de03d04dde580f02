// Package bcs implements Binary Canonical Serialization, the wire format of
// the Move/Sui/Diem family of chains.
//
// BCS is schema-driven and canonical: the caller always knows which type it
// is reading or writing, the output carries no type information, and every
// logical value has exactly one byte representation. That last property is
// what the wallet leans on — transaction bytes are hashed and signed, so the
// encoder here must agree byte for byte with the Mysten Labs reference
// implementation.
//
// The format in brief: unsigned integers of widths 8 through 256 are
// little-endian at their full width; booleans are a single 0/1 byte; strings
// and byte vectors carry a ULEB128 byte-count prefix; typed vectors carry a
// ULEB128 element-count prefix; structs and tuples are their fields
// concatenated in declared order with no framing; options and enums lead
// with a discriminant (one byte for options, ULEB128 for enums). There are
// no floats, no signed integers, no maps, and no padding anywhere.
//
// Two usage levels are exposed. The Writer/Reader pair is the manual
// surface: a Writer accumulates appends, a Reader walks a byte slice and
// panics with *DecodeError on malformed input. The Marshal/Unmarshal
// adapters and the per-schema Encode/Decode helpers are the safe surface:
// they recover those panics into ordinary error returns and, on the decode
// side, report how many bytes were consumed so decoders nest. Writers and
// Readers are single-owner values; encoded output is an immutable plain
// byte slice and freely shareable.
package bcs
