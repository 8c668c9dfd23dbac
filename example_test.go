// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire_test

import (
	"fmt"

	"github.com/aghilardi/dnswire"
	"github.com/bassosimone/runtimex"
	"github.com/miekg/dns"
)

// Use a deterministic query ID to have deterministic output.
//
// In production you should keep the randomized ID chosen by [dnswire.NewQuery].
func fixedQueryID() uint16 {
	return 37
}

func Example_packQuery() {
	query := dnswire.NewQuery("www.example.com", dns.TypeA)
	query.ID = fixedQueryID()
	raw := runtimex.PanicOnError1(query.Pack())
	fmt.Printf("% x\n", raw)

	// Output:
	// 00 25 01 00 00 01 00 00 00 00 00 00 03 77 77 77 07 65 78 61 6d 70 6c 65 03 63 6f 6d 00 00 01 00 01
}

func Example_decodeReply() {
	// A reply as it appears on the wire: the echoed question followed by
	// one A record whose name is a compression pointer to offset 12.
	raw := []byte{
		0x00, 0x25, 0x81, 0x80, // ID, flags: QR RD RA
		0x00, 0x01, 0x00, 0x01, // QDCOUNT, ANCOUNT
		0x00, 0x00, 0x00, 0x00, // NSCOUNT, ARCOUNT
		0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0x03, 'c', 'o', 'm', 0x00,
		0x00, 0x01, 0x00, 0x01, // QTYPE, QCLASS
		0xc0, 0x0c, // answer name pointer
		0x00, 0x01, 0x00, 0x01, // TYPE, CLASS
		0x00, 0x00, 0x00, 0x3c, // TTL
		0x00, 0x04, // RDLENGTH
		93, 184, 216, 34, // RDATA
	}

	resp := runtimex.PanicOnError1(dnswire.ParseResponse(raw))
	fmt.Printf("%s %d\n", resp.Question.Name, resp.Question.AnswerOffset)
	fmt.Printf("%s ttl=%d\n", resp.Answers[0].IP(), resp.Answers[0].TTL)

	// Output:
	// example.com 17
	// 93.184.216.34 ttl=60
}
