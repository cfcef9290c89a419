// Package smtpcore implements the protocol-correctness core of an SMTP
// client as defined in RFC 5321.
//
// It provides three building blocks for a command-execution layer:
//
//   - classification of server replies (Response, CheckResponse)
//   - ESMTP capability negotiation state and enforcement (Capability,
//     EhloData, CheckCapabilities)
//   - connection establishment over plaintext or TLS behind a single
//     transport handle (Io, ConnectInsecure, ConnectSecure)
//
// The package deliberately does not implement the SMTP command grammar,
// retries or connection pooling. It answers two questions only: "was this
// response acceptable" and "is this transport ready to use". Command
// serialization and the reply parser are expected to live in the layer
// above, consuming the types exported here.
package smtpcore

import (
	"fmt"
	"strings"
)

// A Domain is the host name a server reported in its greeting, normalized
// to lower case. It is owned by the per-connection EhloData.
type Domain string

// NewDomain normalizes and validates a host name reported by the server.
func NewDomain(host string) (Domain, error) {
	if host == "" {
		return "", fmt.Errorf("smtpcore: empty domain")
	}
	if strings.ContainsAny(host, " \t\r\n") {
		return "", fmt.Errorf("smtpcore: domain %q contains whitespace", host)
	}
	return Domain(strings.ToLower(host)), nil
}

func (d Domain) String() string {
	return string(d)
}
