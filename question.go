// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"encoding/binary"
	"fmt"
)

// Question is the decoded question section of a DNS message.
//
// Construct using [ParseQuestion].
type Question struct {
	// Name is the queried domain name.
	Name string

	// Type is the query type.
	Type uint16

	// Class is the query class.
	Class uint16

	// AnswerOffset is the offset of the answer section relative to the
	// start of the question section (i.e. counted from byte 12 of the
	// message).
	AnswerOffset int
}

// ParseQuestion decodes the single question section that immediately
// follows the header of msg.
//
// The question name is scanned with [DecodeName]; QTYPE and QCLASS follow
// the name terminator. An empty question name is legal and yields a
// five-byte question section. A truncated name or a message too short for
// QTYPE and QCLASS yields [ErrMalformedMessage].
func ParseQuestion(msg []byte) (Question, error) {
	name, n, err := DecodeName(msg, headerSize)
	if err != nil {
		return Question{}, err
	}

	// QTYPE and QCLASS immediately follow the name terminator.
	cur := headerSize + n
	if cur+4 > len(msg) {
		return Question{}, fmt.Errorf("%w: question is missing its type and class", ErrMalformedMessage)
	}

	return Question{
		Name:         name,
		Type:         binary.BigEndian.Uint16(msg[cur : cur+2]),
		Class:        binary.BigEndian.Uint16(msg[cur+2 : cur+4]),
		AnswerOffset: n + 4,
	}, nil
}
