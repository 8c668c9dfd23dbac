// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"encoding/binary"
	"fmt"
)

// headerSize is the fixed size of the DNS message header.
const headerSize = 12

// Header is the decoded 12-byte DNS message header.
//
// Construct using [ParseHeader].
type Header struct {
	// ID is the transaction ID.
	ID uint16

	// QR is true when the message is a response.
	QR bool

	// Opcode is the four-bit kind of query.
	Opcode uint8

	// AA is true when the responding server is authoritative.
	AA bool

	// TC is true when the message was truncated.
	TC bool

	// RD is true when recursion is desired.
	RD bool

	// RA is true when recursion is available.
	RA bool

	// Z is the three reserved bits.
	Z uint8

	// RCode is the four-bit response code.
	RCode uint8

	// QDCount is the number of questions.
	QDCount uint16

	// ANCount is the number of answer records.
	ANCount uint16

	// NSCount is the number of authority records.
	NSCount uint16

	// ARCount is the number of additional records.
	ARCount uint16
}

// ParseHeader decodes the fixed 12-byte header at the start of msg.
//
// The six 16-bit fields are read in network byte order and the flags word
// is split into its sub-fields by masking, so the result is independent of
// the host byte order. A message shorter than 12 bytes yields
// [ErrMalformedMessage].
func ParseHeader(msg []byte) (Header, error) {
	if len(msg) < headerSize {
		return Header{}, fmt.Errorf("%w: %d bytes is too short for a header", ErrMalformedMessage, len(msg))
	}

	flags := binary.BigEndian.Uint16(msg[2:4])
	return Header{
		ID:      binary.BigEndian.Uint16(msg[0:2]),
		QR:      flags>>15&0x0001 != 0,
		Opcode:  uint8(flags >> 11 & 0x000f),
		AA:      flags>>10&0x0001 != 0,
		TC:      flags>>9&0x0001 != 0,
		RD:      flags>>8&0x0001 != 0,
		RA:      flags>>7&0x0001 != 0,
		Z:       uint8(flags >> 4 & 0x0007),
		RCode:   uint8(flags & 0x000f),
		QDCount: binary.BigEndian.Uint16(msg[4:6]),
		ANCount: binary.BigEndian.Uint16(msg[6:8]),
		NSCount: binary.BigEndian.Uint16(msg[8:10]),
		ARCount: binary.BigEndian.Uint16(msg[10:12]),
	}, nil
}
