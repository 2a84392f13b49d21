// internal/poller/modbus/client_test.go
package modbus

import (
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer answers FC 3 requests from a fixed register image.
// exception, when non-zero, is returned instead of data.
type fakeServer struct {
	ln        net.Listener
	regs      []uint16
	exception byte
}

func newFakeServer(t *testing.T, regs []uint16, exception byte) *fakeServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeServer{ln: ln, regs: regs, exception: exception}
	go s.serve()
	t.Cleanup(func() { _ = ln.Close() })
	return s
}

func (s *fakeServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	defer conn.Close()

	for {
		// MBAP(7) + FC(1) + Address(2) + Quantity(2)
		req := make([]byte, 12)
		if _, err := io.ReadFull(conn, req); err != nil {
			return
		}

		fc := req[7]
		addr := binary.BigEndian.Uint16(req[8:10])
		qty := binary.BigEndian.Uint16(req[10:12])

		var pdu []byte
		if s.exception != 0 {
			pdu = []byte{fc | 0x80, s.exception}
		} else {
			pdu = make([]byte, 2+2*int(qty))
			pdu[0] = fc
			pdu[1] = byte(2 * qty)
			for i := 0; i < int(qty); i++ {
				var v uint16
				if int(addr)+i < len(s.regs) {
					v = s.regs[int(addr)+i]
				}
				binary.BigEndian.PutUint16(pdu[2+2*i:], v)
			}
		}

		resp := make([]byte, 7+len(pdu))
		copy(resp[0:4], req[0:4]) // transaction + protocol id
		binary.BigEndian.PutUint16(resp[4:6], uint16(1+len(pdu)))
		resp[6] = req[6] // unit id
		copy(resp[7:], pdu)

		if _, err := conn.Write(resp); err != nil {
			return
		}
	}
}

func TestClient_ReadHoldingRegisters(t *testing.T) {
	srv := newFakeServer(t, []uint16{0x0000, 0x0102, 0xFFFF, 0x8000}, 0)

	c, err := New(Config{Endpoint: srv.ln.Addr().String(), UnitID: 1, Timeout: time.Second})
	require.NoError(t, err)
	defer c.Close()

	regs, err := c.ReadHoldingRegisters(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x0102, 0xFFFF, 0x8000}, regs)

	// connection is reused
	regs, err = c.ReadHoldingRegisters(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0}, regs)
}

func TestClient_Exception(t *testing.T) {
	srv := newFakeServer(t, nil, 0x02)

	c, err := New(Config{Endpoint: srv.ln.Addr().String(), UnitID: 1, Timeout: time.Second})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.ReadHoldingRegisters(0x0100, 60)
	require.Error(t, err)

	code, ok := ExceptionCode(err)
	require.True(t, ok)
	assert.Equal(t, byte(0x02), code)
}

func TestNew_RequiresEndpoint(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNew_ConnectFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = New(Config{Endpoint: addr, Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}

func TestUnpackRegisters(t *testing.T) {
	assert.Equal(t, []uint16{0x4142, 0x00FF}, unpackRegisters([]byte{0x41, 0x42, 0x00, 0xFF}))
	assert.Empty(t, unpackRegisters(nil))
}

func TestExceptionCode_OtherErrors(t *testing.T) {
	_, ok := ExceptionCode(io.EOF)
	assert.False(t, ok)
}
