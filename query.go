// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"encoding/binary"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// queryFlags is the flags word of every query we emit: QR=0, Opcode=0, and
// only the recursion-desired bit set.
const queryFlags = 0x0100

// Query is a DNS query.
//
// Construct using [NewQuery] or set the MANDATORY fields.
type Query struct {
	// ID is the OPTIONAL transaction ID.
	//
	// A correct implementation matches the reply ID against this value;
	// [*Client] only logs a mismatch, so a fixed ID is usable for
	// deterministic output but leaves spoofed replies undetected.
	ID uint16

	// Name is the MANDATORY domain name to query.
	Name string

	// Type is the query type, typically [dns.TypeA].
	Type uint16
}

// NewQuery constructs a new [*Query] with a randomized transaction ID.
func NewQuery(name string, qtype uint16) *Query {
	return &Query{
		ID:   dns.Id(),
		Name: name,
		Type: qtype,
	}
}

// Pack serializes the query into a complete message: the 12-byte header
// with QDCOUNT=1 and only the recursion-desired flag set, followed by the
// encoded question name, QTYPE, and QCLASS=IN.
//
// The domain name is IDNA-encoded before packing. The output length is
// always 12 + len(encoded name) + 4.
func (q *Query) Pack() ([]byte, error) {
	// 1. IDNA encode the domain name; the empty name is preserved as-is
	// and encodes to the bare root terminator.
	name := q.Name
	if name != "" {
		punyName, err := idna.Lookup.ToASCII(name)
		if err != nil {
			return nil, err
		}
		// EncodeName wants the name without its trailing dot.
		name = strings.TrimSuffix(punyName, ".")
	}

	// 2. header: ID, flags, QDCOUNT=1, remaining counts zero
	encoded := EncodeName(name)
	msg := make([]byte, 0, headerSize+len(encoded)+4)
	msg = binary.BigEndian.AppendUint16(msg, q.ID)
	msg = binary.BigEndian.AppendUint16(msg, queryFlags)
	msg = binary.BigEndian.AppendUint16(msg, 1)
	msg = binary.BigEndian.AppendUint16(msg, 0)
	msg = binary.BigEndian.AppendUint16(msg, 0)
	msg = binary.BigEndian.AppendUint16(msg, 0)

	// 3. question: QNAME, QTYPE, QCLASS
	msg = append(msg, encoded...)
	msg = binary.BigEndian.AppendUint16(msg, q.Type)
	msg = binary.BigEndian.AppendUint16(msg, dns.ClassINET)
	return msg, nil
}
