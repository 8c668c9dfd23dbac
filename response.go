// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"errors"
	"fmt"
	"net"
)

// Errors returned by the decoders and by [*Client].
var (
	// ErrMalformedMessage means that a message was too short for the
	// section being decoded or otherwise violated the wire format. Every
	// decoder in this package reports truncation through this error
	// instead of reading out of bounds.
	ErrMalformedMessage = errors.New("malformed DNS message")

	// ErrQueryTimeout means that no reply arrived within the configured
	// timeout. The lookup is over; there is no retry.
	ErrQueryTimeout = errors.New("DNS query timed out")
)

// Response is a decoded DNS reply.
//
// Construct using [ParseResponse]. All fields are views over the single
// received message and are only meaningful for the lookup that produced
// them.
type Response struct {
	// Header is the decoded message header.
	Header Header

	// Question is the echoed question section.
	Question Question

	// Answers holds the decoded answer records, in wire order. Its
	// length always equals Header.ANCount.
	Answers []ResourceRecord

	// Size is the length in bytes of the decoded message.
	Size int

	// Peer is the address the reply arrived from. Set by
	// [*Client.LookupA]; nil for messages decoded directly with
	// [ParseResponse].
	Peer net.Addr
}

// ParseResponse decodes the header, question, and answer sections of a raw
// reply message.
//
// The answer section starts at 12 + Question.AnswerOffset; each record is
// decoded with [ParseResourceRecord] and the offset advances by that
// record's own [ResourceRecord.Size], so the header's ANCOUNT must
// reconcile with the records actually present. Any truncation yields
// [ErrMalformedMessage].
func ParseResponse(msg []byte) (*Response, error) {
	header, err := ParseHeader(msg)
	if err != nil {
		return nil, err
	}

	question, err := ParseQuestion(msg)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Header:   header,
		Question: question,
		Answers:  make([]ResourceRecord, 0, header.ANCount),
		Size:     len(msg),
	}

	off := headerSize + question.AnswerOffset
	for i := 0; i < int(header.ANCount); i++ {
		rec, err := ParseResourceRecord(msg, off)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i, err)
		}
		resp.Answers = append(resp.Answers, rec)
		off += rec.Size()
	}
	return resp, nil
}
