// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"net"
	"testing"

	"github.com/bassosimone/runtimex"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

// packedReply builds a compressed reply to an example.com A query using
// the oracle implementation and returns its wire form.
func packedReply(answers ...dns.RR) []byte {
	query := new(dns.Msg)
	query.SetQuestion("example.com.", dns.TypeA)
	query.Id = 0x0001

	reply := new(dns.Msg)
	reply.SetReply(query)
	// Compression makes the oracle name each answer with a two-byte
	// pointer, the only answer name form this package decodes.
	reply.Compress = true
	reply.Answer = answers
	return runtimex.PanicOnError1(reply.Pack())
}

func newA(name string, ttl uint32, ip net.IP) *dns.A {
	return &dns.A{
		Hdr: dns.RR_Header{Name: name, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: ttl},
		A:   ip,
	}
}

func TestParseResponseSingleAnswer(t *testing.T) {
	raw := packedReply(newA("example.com.", 60, net.IPv4(93, 184, 216, 34)))

	resp, err := ParseResponse(raw)
	require.NoError(t, err)

	require.Equal(t, uint16(0x0001), resp.Header.ID)
	require.True(t, resp.Header.QR)
	require.True(t, resp.Header.RD)
	require.Equal(t, uint8(0), resp.Header.RCode)
	require.Equal(t, uint16(1), resp.Header.QDCount)
	require.Equal(t, uint16(1), resp.Header.ANCount)

	require.Equal(t, "example.com", resp.Question.Name)
	require.Equal(t, dns.TypeA, resp.Question.Type)
	require.Equal(t, uint16(dns.ClassINET), resp.Question.Class)
	require.Equal(t, 17, resp.Question.AnswerOffset)

	require.Equal(t, len(raw), resp.Size)
	require.Nil(t, resp.Peer)

	require.Len(t, resp.Answers, 1)
	rec := resp.Answers[0]
	require.Equal(t, uint16(12), rec.NameOffset)
	require.Equal(t, dns.TypeA, rec.Type)
	require.Equal(t, uint32(60), rec.TTL)
	require.Equal(t, uint16(4), rec.RDLength)
	require.Equal(t, "93.184.216.34", rec.IP())
}

func TestParseResponseFixedStrideAnswers(t *testing.T) {
	// A uniform all-A answer set occupies sixteen bytes per record, so
	// record i starts at answer_offset + i*16.
	raw := packedReply(
		newA("example.com.", 60, net.IPv4(93, 184, 216, 34)),
		newA("example.com.", 60, net.IPv4(93, 184, 216, 35)),
		newA("example.com.", 60, net.IPv4(93, 184, 216, 36)),
	)

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Equal(t, uint16(3), resp.Header.ANCount)
	require.Len(t, resp.Answers, 3)

	for i, rec := range resp.Answers {
		require.Equal(t, 16, rec.Size())
		require.Equal(t, uint16(12), rec.NameOffset)
		start := headerSize + resp.Question.AnswerOffset + i*16
		direct, err := ParseResourceRecord(raw, start)
		require.NoError(t, err)
		require.Equal(t, direct, rec)
	}

	require.Equal(t, "93.184.216.34", resp.Answers[0].IP())
	require.Equal(t, "93.184.216.35", resp.Answers[1].IP())
	require.Equal(t, "93.184.216.36", resp.Answers[2].IP())
}

func TestParseResponseMixedSizeAnswers(t *testing.T) {
	// A CNAME answer carries a domain name as RDATA, so its record is
	// wider than sixteen bytes and the iteration must advance by each
	// record's own size.
	cname := &dns.CNAME{
		Hdr:    dns.RR_Header{Name: "example.com.", Rrtype: dns.TypeCNAME, Class: dns.ClassINET, Ttl: 60},
		Target: "alias.test.",
	}
	raw := packedReply(cname, newA("alias.test.", 60, net.IPv4(10, 0, 0, 1)))

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Len(t, resp.Answers, 2)
	require.Equal(t, dns.TypeCNAME, resp.Answers[0].Type)
	require.Equal(t, dns.TypeA, resp.Answers[1].Type)
	require.Equal(t, uint16(4), resp.Answers[1].RDLength)
	require.Equal(t, "10.0.0.1", resp.Answers[1].IP())
}

func TestParseResponseNoAnswers(t *testing.T) {
	raw := packedReply()

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Equal(t, uint16(0), resp.Header.ANCount)
	require.Empty(t, resp.Answers)
}

func TestParseResponseMalformed(t *testing.T) {
	valid := packedReply(newA("example.com.", 60, net.IPv4(93, 184, 216, 34)))

	tests := []struct {
		name string
		msg  []byte
	}{
		{"EmptyBuffer", []byte{}},
		{"HeaderOnlyButQuestionPromised", valid[:12]},
		{"TruncatedQuestion", valid[:20]},
		{"TruncatedAnswer", valid[:len(valid)-2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.msg)
			require.ErrorIs(t, err, ErrMalformedMessage)
		})
	}
}
