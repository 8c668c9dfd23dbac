// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"fmt"
	"strings"
)

// maxLabelLength is the longest label the wire format can represent: the
// two high bits of a length octet are reserved for the compression-pointer
// marker, leaving six bits for the length itself.
const maxLabelLength = 63

// EncodeName encodes a dotted domain name into the length-prefixed label
// sequence used by the question section: each label is emitted as a length
// octet followed by the label bytes, and the sequence is terminated by a
// zero octet.
//
// The empty name encodes to a single zero octet (the DNS root). Label
// lengths are not validated here; a label longer than 63 bytes produces an
// encoding that [DecodeName] will reject.
func EncodeName(name string) []byte {
	out := make([]byte, 0, len(name)+2)
	if name != "" {
		for _, label := range strings.Split(name, ".") {
			out = append(out, byte(len(label)))
			out = append(out, label...)
		}
	}
	return append(out, 0)
}

// DecodeName decodes a length-prefixed label sequence starting at off in
// buf. On success it returns the dotted name and the number of bytes
// consumed, including the terminating zero octet.
//
// The decoder is a small two-state scanner: it alternates between expecting
// a length octet and consuming that many bytes into the current label, until
// a zero length octet terminates the name. Only the literal form is
// understood; a length octet with the compression-pointer marker set, or any
// length above 63, yields [ErrMalformedMessage]. Running past the end of buf
// before the terminator also yields [ErrMalformedMessage].
func DecodeName(buf []byte, off int) (string, int, error) {
	var labels []string
	cur := off

	for {
		// 1. we expect a length octet; stop at the terminator
		if cur >= len(buf) {
			return "", 0, fmt.Errorf("%w: name is missing its terminator", ErrMalformedMessage)
		}
		length := int(buf[cur])
		cur++
		if length == 0 {
			break
		}
		if length > maxLabelLength {
			return "", 0, fmt.Errorf("%w: compressed or invalid label length %d", ErrMalformedMessage, length)
		}

		// 2. consume exactly length bytes into the current label
		if cur+length > len(buf) {
			return "", 0, fmt.Errorf("%w: label extends past end of message", ErrMalformedMessage)
		}
		labels = append(labels, string(buf[cur:cur+length]))
		cur += length
	}

	return strings.Join(labels, "."), cur - off, nil
}
