// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnswire is a hand-rolled DNS wire codec and one-shot lookup client.
//
// [NewQuery] and [*Query] allow constructing and packing an A/IN query
// message. [ParseHeader], [ParseQuestion], and [ParseResourceRecord] decode
// the corresponding sections of a raw reply, and [ParseResponse] decodes a
// whole reply in one call. [*Client] sends a packed query over UDP and
// decodes the single reply within a caller-supplied timeout.
//
// Unlike most DNS packages, this package does not delegate serialization to
// [github.com/miekg/dns]: the header bit fields, the length-prefixed label
// form of domain names, and the resource record layout are encoded and
// decoded manually. We still use [github.com/miekg/dns] for well-known
// constants and transaction ID generation, and as an independent oracle in
// the tests.
//
// The decoders handle the literal (uncompressed) label form only. A name
// that begins with a compression pointer is rejected as malformed rather
// than dereferenced; the queries this package emits are never compressible,
// and the answer-section name pointer is retained as an opaque offset.
package dnswire
