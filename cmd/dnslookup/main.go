// SPDX-License-Identifier: GPL-3.0-or-later

// Command dnslookup sends a single A-record query to a nameserver over UDP
// and prints the decoded reply.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aghilardi/dnswire"
	"github.com/aghilardi/dnswire/internal/log"
)

func main() {
	var nsAddr string
	flag.StringVar(&nsAddr, "nsip", "", "IP address of the nameserver")
	flag.StringVar(&nsAddr, "nameserver_ip", "", "IP address of the nameserver")
	var timeout int
	flag.IntVar(&timeout, "t", 1, "timeout in seconds")
	flag.IntVar(&timeout, "timeout", 1, "timeout in seconds")
	verbosity := flag.String(
		"verbosity",
		"error",
		"desired logging verbosity: one of error, warn, info, debug",
	)
	flag.Parse()

	if nsAddr == "" || flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s -nsip <nameserver_ip> [-t <timeout>] host\n", os.Args[0])
		os.Exit(2)
	}
	host := flag.Arg(0)

	level, err := parseVerbosity(*verbosity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.NewConsoleLogger(level)

	client := &dnswire.Client{
		Nameserver: nsAddr,
		Timeout:    time.Duration(timeout) * time.Second,
		Logger:     logger,
	}

	resp, err := client.LookupA(host)
	switch {
	case errors.Is(err, dnswire.ErrQueryTimeout):
		fmt.Println("Request timeout")
		os.Exit(1)
	case err != nil:
		logger.Error("main: lookup failed: host=%s err=%v", host, err)
		os.Exit(1)
	}

	printResponse(resp)
}

// parseVerbosity validates the -verbosity flag value.
func parseVerbosity(verbosity string) (log.Level, error) {
	level, ok := log.ParseLevel(verbosity)
	if !ok {
		return 0, fmt.Errorf("unknown verbosity level: %q", verbosity)
	}
	return level, nil
}

func printResponse(resp *dnswire.Response) {
	fmt.Printf("Got %d bytes from %s\n", resp.Size, resp.Peer)

	h := resp.Header
	fmt.Println("Header:")
	fmt.Printf("\tmessage_id: %d\n", h.ID)
	fmt.Println("\tflags:")
	fmt.Printf("\t\tqr: %s\n", bit(h.QR))
	fmt.Printf("\t\topcode: %d\n", h.Opcode)
	fmt.Printf("\t\taa: %s\n", bit(h.AA))
	fmt.Printf("\t\ttc: %s\n", bit(h.TC))
	fmt.Printf("\t\trd: %s\n", bit(h.RD))
	fmt.Printf("\t\tra: %s\n", bit(h.RA))
	fmt.Printf("\t\tz: %d\n", h.Z)
	fmt.Printf("\t\trcode: %d\n", h.RCode)
	fmt.Printf("\tqd_count: %d\n", h.QDCount)
	fmt.Printf("\tan_count: %d\n", h.ANCount)
	fmt.Printf("\tns_count: %d\n", h.NSCount)
	fmt.Printf("\tar_count: %d\n", h.ARCount)

	q := resp.Question
	fmt.Println("Question:")
	fmt.Printf("\tqname: %s\n", q.Name)
	fmt.Printf("\tqtype: %d\n", q.Type)
	fmt.Printf("\tqclass: %d\n", q.Class)

	for _, rec := range resp.Answers {
		fmt.Println("Answer:")
		fmt.Printf("\tname_offset: %d\n", rec.NameOffset)
		fmt.Printf("\ttype: %d\n", rec.Type)
		fmt.Printf("\tclass: %d\n", rec.Class)
		fmt.Printf("\tttl (seconds): %d\n", rec.TTL)
		fmt.Printf("\trd_length: %d\n", rec.RDLength)
		fmt.Printf("\tip: %s\n", rec.IP())
	}
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
