// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/miekg/dns"

	"github.com/aghilardi/dnswire/internal/log"
)

const (
	// DefaultPort is the standard DNS-over-UDP port.
	DefaultPort = 53

	// DefaultTimeout bounds the wait for a reply when [Client.Timeout]
	// is left zero.
	DefaultTimeout = 1 * time.Second

	// maxResponseSizeUDP is the maximum response size we accept over
	// UDP and is consistent with what the standard library uses.
	maxResponseSizeUDP = 1232
)

// Client performs one-shot A-record lookups against a single nameserver
// over UDP.
//
// Each lookup opens its own socket, sends exactly one query, waits for at
// most Timeout for a single reply, and closes the socket. There is no
// retry, no fallback nameserver, and no state shared across lookups, so a
// Client is safe for concurrent use.
//
// The zero Logger, Port, and Timeout fields fall back to a no-op logger,
// [DefaultPort], and [DefaultTimeout].
type Client struct {
	// Nameserver is the MANDATORY nameserver IPv4/IPv6 address literal.
	Nameserver string

	// Port OPTIONALLY overrides the nameserver port.
	Port int

	// Timeout OPTIONALLY bounds the wait for the reply datagram.
	Timeout time.Duration

	// Logger OPTIONALLY receives debug and warning messages.
	Logger log.Logger
}

// LookupA sends a single A/IN query for hostname and decodes the reply.
//
// A missing reply within the timeout yields [ErrQueryTimeout]; a reply
// that cannot be decoded yields [ErrMalformedMessage]. Both are fatal for
// this lookup and cause no further reads on the socket.
//
// The reply is decoded regardless of its transaction ID, QR bit, and
// RCODE; a mismatched ID or an unset QR bit is only logged as a warning.
func (c *Client) LookupA(hostname string) (*Response, error) {
	logger := c.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	// 1. build the outgoing query
	query := NewQuery(hostname, dns.TypeA)
	raw, err := query.Pack()
	if err != nil {
		return nil, err
	}

	// 2. open the socket; it lives exactly as long as this lookup
	endpoint := net.JoinHostPort(c.Nameserver, strconv.Itoa(port))
	conn, err := net.Dial("udp", endpoint)
	if err != nil {
		return nil, fmt.Errorf("lookup: cannot reach nameserver: %w", err)
	}
	defer conn.Close()

	// 3. send the query datagram
	logger.Debug("lookup: sending query: host=%s server=%s id=%d bytes=%d",
		hostname, endpoint, query.ID, len(raw))
	if _, err := conn.Write(raw); err != nil {
		return nil, fmt.Errorf("lookup: cannot send query: %w", err)
	}

	// 4. await a single reply within the timeout
	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}
	buf := make([]byte, maxResponseSizeUDP)
	n, err := conn.Read(buf)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, ErrQueryTimeout
		}
		return nil, fmt.Errorf("lookup: cannot receive reply: %w", err)
	}
	logger.Debug("lookup: got reply: bytes=%d from=%s", n, conn.RemoteAddr())

	// 5. decode header, question, and answers
	resp, err := ParseResponse(buf[:n])
	if err != nil {
		return nil, err
	}
	resp.Peer = conn.RemoteAddr()
	if resp.Header.ID != query.ID {
		logger.Warn("lookup: reply ID does not match query ID: got=%d want=%d",
			resp.Header.ID, query.ID)
	}
	if !resp.Header.QR {
		logger.Warn("lookup: reply does not have the QR bit set")
	}
	return resp, nil
}
