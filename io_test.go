package smtpcore

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIoDebugTee(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		server.Write([]byte("220 mail.example.test ready\r\n"))
		buf := make([]byte, 64)
		server.Read(buf)
	}()

	var wire bytes.Buffer
	conn := NewIo(client)
	conn.Debug = &wire
	defer conn.Close()

	buf := make([]byte, 64)
	n, err := conn.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "220 mail.example.test ready\r\n", string(buf[:n]))

	_, err = conn.Write([]byte("EHLO client.example.test\r\n"))
	require.NoError(t, err)
	<-done

	assert.Equal(t,
		"220 mail.example.test ready\r\nEHLO client.example.test\r\n",
		wire.String(),
		"debug writer must see both directions")
}

func TestIoPlainHasNoTLSState(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	conn := NewIo(client)
	defer conn.Close()

	assert.False(t, conn.IsTLS())
	_, ok := conn.TLSConnectionState()
	assert.False(t, ok)
}
