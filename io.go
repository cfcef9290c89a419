package smtpcore

import (
	"crypto/tls"
	"io"
	"net"
	"time"
)

// An Io is the transport handle of one connection: exactly one plaintext or
// TLS-secured stream behind a single read/write interface. It is created by
// ConnectInsecure or ConnectSecure and owned exclusively by the connection
// object above it until closed.
type Io struct {
	conn net.Conn

	// Debug specifies an optional writer which receives a copy of all
	// bytes read from and written to the wire.
	Debug io.Writer
}

// NewIo wraps an established connection. The connect operations call this;
// it is exported so a session can be built on a caller-supplied conn, for
// example in tests.
func NewIo(conn net.Conn) *Io {
	return &Io{conn: conn}
}

func (t *Io) Read(b []byte) (int, error) {
	n, err := t.conn.Read(b)
	if n > 0 && t.Debug != nil {
		t.Debug.Write(b[:n])
	}
	return n, err
}

func (t *Io) Write(b []byte) (int, error) {
	if t.Debug != nil {
		t.Debug.Write(b)
	}
	return t.conn.Write(b)
}

// Close shuts the underlying stream down. For a TLS stream this closes the
// secure channel and the raw connection beneath it.
func (t *Io) Close() error {
	return t.conn.Close()
}

// SetDeadline sets the read and write deadline on the underlying stream.
// The connect operations enforce no deadline themselves; callers impose
// their own around each command exchange.
func (t *Io) SetDeadline(deadline time.Time) error {
	return t.conn.SetDeadline(deadline)
}

// IsTLS reports whether the stream is TLS-secured.
func (t *Io) IsTLS() bool {
	_, ok := t.conn.(*tls.Conn)
	return ok
}

// TLSConnectionState returns the TLS state of the stream. The return
// values are their zero values for a plaintext stream.
func (t *Io) TLSConnectionState() (state tls.ConnectionState, ok bool) {
	tc, ok := t.conn.(*tls.Conn)
	if !ok {
		return
	}
	return tc.ConnectionState(), true
}
