// Package flatbuffers implements a zero-copy binary serialization runtime:
// a builder that assembles tables, structs, strings, and vectors into a
// single flat byte buffer, and a reader that accesses fields directly out
// of that buffer without unpacking it into a parsed object graph.
//
// A buffer is a single contiguous byte array with one root object. Every
// object is either a table (an optional, versionable, vtable-addressed set
// of fields) or a struct (a fixed, always-present, inline field layout).
// The builder writes back to front: each object is complete and immutable
// the moment it is emitted, so by the time the root is written every offset
// it reaches is already final. Readers start from the root and only ever
// walk forward through offsets, never copying field data out of the buffer
// except where the caller asks for it explicitly.
//
// Generated-style accessor code is expected to sit on top of this package:
// a schema compiler would emit, per table, a wrapper type with an Init
// method and named field getters built from GetXxxSlot/GetStructSlot, and
// per struct a wrapper built from GetXxx at fixed offsets. This package
// supplies the primitives; it has no notion of a schema.
package flatbuffers
