// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// recordPrefixSize is the size of the fixed part of a resource record as
// this package encounters it: a two-byte name pointer, type, class, TTL,
// and RDLENGTH.
const recordPrefixSize = 12

// ResourceRecord is one decoded resource record from the answer section.
//
// Construct using [ParseResourceRecord].
type ResourceRecord struct {
	// NameOffset is the low 14 bits of the record's name field. Replies
	// to our single-question queries name each answer with a compression
	// pointer back into the message; the offset is retained but never
	// dereferenced.
	NameOffset uint16

	// Type is the record type.
	Type uint16

	// Class is the record class.
	Class uint16

	// TTL is the number of seconds the record may be cached.
	TTL uint32

	// RDLength is the length of RData in bytes.
	RDLength uint16

	// RData is the type-specific payload. For an A record this is the
	// four bytes of an IPv4 address.
	RData []byte
}

// ParseResourceRecord decodes one resource record starting at the absolute
// offset off in msg.
//
// The 12-byte fixed prefix is decoded first; the top two bits of the name
// field (the compression-pointer marker) are masked off without being
// validated. RDLENGTH bytes of RDATA follow the prefix. A record that does
// not fit within msg yields [ErrMalformedMessage].
func ParseResourceRecord(msg []byte, off int) (ResourceRecord, error) {
	if off < 0 || off+recordPrefixSize > len(msg) {
		return ResourceRecord{}, fmt.Errorf("%w: resource record at offset %d overruns the message", ErrMalformedMessage, off)
	}

	rec := ResourceRecord{
		NameOffset: binary.BigEndian.Uint16(msg[off:off+2]) & 0x3fff,
		Type:       binary.BigEndian.Uint16(msg[off+2 : off+4]),
		Class:      binary.BigEndian.Uint16(msg[off+4 : off+6]),
		TTL:        binary.BigEndian.Uint32(msg[off+6 : off+10]),
		RDLength:   binary.BigEndian.Uint16(msg[off+10 : off+12]),
	}

	rdataStart := off + recordPrefixSize
	if rdataStart+int(rec.RDLength) > len(msg) {
		return ResourceRecord{}, fmt.Errorf("%w: RDATA of %d bytes overruns the message", ErrMalformedMessage, rec.RDLength)
	}
	rec.RData = msg[rdataStart : rdataStart+int(rec.RDLength)]
	return rec, nil
}

// Size returns the total wire size of the record, prefix included. The
// answer iteration in [ParseResponse] advances by this amount, so answer
// sets with mixed RDATA sizes decode correctly.
func (r ResourceRecord) Size() int {
	return recordPrefixSize + int(r.RDLength)
}

// IP renders RDATA as dotted-decimal octets. For a four-byte A record this
// is the usual IPv4 address form; other record types would need their own
// RDATA decoding.
func (r ResourceRecord) IP() string {
	octets := make([]string, 0, len(r.RData))
	for _, b := range r.RData {
		octets = append(octets, strconv.Itoa(int(b)))
	}
	return strings.Join(octets, ".")
}
