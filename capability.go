package smtpcore

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
)

// A Capability is an ESMTP keyword the server advertised in its EHLO
// response, normalized to upper case.
type Capability string

// Keywords for the extensions commonly gating client commands.
const (
	StartTLS     Capability = "STARTTLS"
	Auth         Capability = "AUTH"
	Pipelining   Capability = "PIPELINING"
	EightBitMIME Capability = "8BITMIME"
	SMTPUTF8     Capability = "SMTPUTF8"
	Size         Capability = "SIZE"
	Chunking     Capability = "CHUNKING"
)

// NewCapability validates kw against the ehlo-keyword grammar of RFC 5321
// (letters, digits and hyphens, starting with a letter or digit) and
// returns it upper-cased.
func NewCapability(kw string) (Capability, error) {
	if kw == "" {
		return "", fmt.Errorf("smtpcore: empty capability keyword")
	}
	for i, r := range kw {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-' && i > 0:
		default:
			return "", fmt.Errorf("smtpcore: invalid capability keyword %q", kw)
		}
	}
	return Capability(strings.ToUpper(kw)), nil
}

func (c Capability) String() string {
	return string(c)
}

// EhloData is the per-connection negotiation state: the domain the server
// reported in its greeting and the capabilities it advertised, each with
// its parameter values. It is owned by exactly one connection and is not
// safe for concurrent mutation.
type EhloData struct {
	domain Domain
	caps   map[Capability][]string
}

// NewEhloData builds negotiation state from a greeting domain and an
// advertised capability map, as produced by the greeting-handling layer.
// The map is taken over by the EhloData; callers must not keep mutating it.
func NewEhloData(domain Domain, caps map[Capability][]string) *EhloData {
	if caps == nil {
		caps = make(map[Capability][]string)
	}
	return &EhloData{domain: domain, caps: caps}
}

// Domain returns the domain the server reported in its greeting.
func (d *EhloData) Domain() Domain {
	return d.domain
}

// AddCapability records an advertised capability. Re-advertising a keyword
// replaces its parameter list, it never duplicates the entry.
func (d *EhloData) AddCapability(c Capability, params ...string) {
	d.caps[c] = params
}

// HasCapability reports whether the server advertised c.
func (d *EhloData) HasCapability(c Capability) bool {
	_, ok := d.caps[c]
	return ok
}

// CapabilityParams returns the parameter values advertised with c, and
// whether c was advertised at all. An advertised capability may carry no
// parameters.
func (d *EhloData) CapabilityParams(c Capability) ([]string, bool) {
	params, ok := d.caps[c]
	return params, ok
}

// Capabilities returns the advertised capability map, decomposing the
// EhloData back into the form NewEhloData accepts.
func (d *EhloData) Capabilities() map[Capability][]string {
	return d.caps
}

// CheckCapabilities verifies that every required capability was advertised
// by the server. It fails with MissingCapabilities listing the absent ones
// in the order they were required, so diagnostics are deterministic and
// match the caller's declaration. It performs no I/O; capability-gated
// commands must call it before writing any bytes.
//
// A nil EhloData means no EHLO exchange happened, so every requirement is
// missing.
func CheckCapabilities(d *EhloData, required ...Capability) error {
	var missing MissingCapabilities
	for _, c := range required {
		if d == nil || !d.HasCapability(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return missing
	}
	return nil
}

// CheckAuthCapability verifies that the server supports the mechanism of
// the given SASL client before any AUTH bytes are written, starting the
// mechanism in the process. On success it returns the mechanism name and
// the initial response to send with the AUTH command. It fails with
// MissingCapabilities{Auth} if AUTH was not advertised or the mechanism is
// not among the advertised ones.
func CheckAuthCapability(d *EhloData, a sasl.Client) (mech string, initial []byte, err error) {
	if d == nil {
		return "", nil, MissingCapabilities{Auth}
	}
	advertised, ok := d.CapabilityParams(Auth)
	if !ok {
		return "", nil, MissingCapabilities{Auth}
	}

	mech, initial, err = a.Start()
	if err != nil {
		return "", nil, err
	}
	for _, m := range advertised {
		if strings.EqualFold(m, mech) {
			return mech, initial, nil
		}
	}
	return "", nil, MissingCapabilities{Auth}
}
