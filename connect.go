package smtpcore

import (
	"context"
	"crypto/tls"
	"net"
)

// SetupTLS customizes the TLS client configuration used by ConnectSecure,
// for example to add custom trust anchors. It runs exactly once per
// connect, before any network activity; its error aborts the connect
// without a socket being opened. The returned config is the one used for
// the handshake.
type SetupTLS func(*tls.Config) (*tls.Config, error)

// TLSConfig configures ConnectSecure: the domain name certificates are
// verified against and an optional setup step.
type TLSConfig struct {
	Domain string
	Setup  SetupTLS
}

// ConnectInsecure opens a plaintext connection to addr ("host:port") and
// wraps it as an Io once established. No protocol-level failure is
// possible at this stage; any error is the dialer's. The context cancels
// an in-flight connect; no timeout is enforced beyond it.
func ConnectInsecure(ctx context.Context, addr string) (*Io, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewIo(conn), nil
}

// ConnectSecure opens a TLS-secured connection to addr ("host:port").
//
// The setup step runs first, synchronously; if it fails the connect is
// aborted before any network I/O. Then the raw connection is dialed and
// the TLS handshake performed against it, verifying the server certificate
// against config.Domain. Setup and handshake failures are both translated
// by mapTLSErr so callers see one error surface regardless of which phase
// failed; dial failures already carry that surface. There is no internal
// retry.
func ConnectSecure(ctx context.Context, addr string, config TLSConfig) (*Io, error) {
	tlsConf := &tls.Config{ServerName: config.Domain}
	if config.Setup != nil {
		var err error
		tlsConf, err = config.Setup(tlsConf)
		if err != nil {
			return nil, mapTLSErr(err)
		}
		if tlsConf == nil {
			tlsConf = &tls.Config{}
		}
		if tlsConf.ServerName == "" {
			// Make a copy to avoid polluting the setup's config
			tlsConf = tlsConf.Clone()
			tlsConf.ServerName = config.Domain
		}
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	tlsConn := tls.Client(conn, tlsConf)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, mapTLSErr(err)
	}
	return NewIo(tlsConn), nil
}

// mapTLSErr translates a TLS setup or handshake failure into the net.OpError
// surface the dialer produces, preserving the distinct cause for Unwrap.
func mapTLSErr(err error) error {
	return &net.OpError{Op: "tls", Net: "tcp", Err: err}
}
