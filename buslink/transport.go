// buslink/transport.go
package buslink

import (
	"errors"
	"time"

	"github.com/goburrow/modbus"
)

// RTUConfig describes a serial (RS-485) connection.
type RTUConfig struct {
	Device   string // e.g. /dev/ttyUSB0
	BaudRate int
	DataBits int
	Parity   string // "N", "E" or "O"
	StopBits int
	Timeout  time.Duration
}

// TCPConfig describes a Modbus TCP connection.
type TCPConfig struct {
	Endpoint string // host:port
	Timeout  time.Duration
}

// DialRTU opens the serial port and returns a link over it.
func DialRTU(cfg RTUConfig) (*Link, error) {
	if cfg.Device == "" {
		return nil, errors.New("buslink: serial device required")
	}

	h := modbus.NewRTUClientHandler(cfg.Device)
	h.BaudRate = cfg.BaudRate
	h.DataBits = cfg.DataBits
	h.Parity = cfg.Parity
	h.StopBits = cfg.StopBits
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return New(&rtuTransport{Client: modbus.NewClient(h), handler: h}), nil
}

// DialTCP connects to a Modbus TCP endpoint and returns a link over it.
func DialTCP(cfg TCPConfig) (*Link, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("buslink: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return New(&tcpTransport{Client: modbus.NewClient(h), handler: h}), nil
}

// rtuTransport adapts a goburrow RTU handler to Transport. The
// handler's SlaveId field addresses the next request.
type rtuTransport struct {
	modbus.Client
	handler *modbus.RTUClientHandler
}

func (t *rtuTransport) SetSlave(id uint8) { t.handler.SlaveId = id }
func (t *rtuTransport) Close() error      { return t.handler.Close() }

// tcpTransport adapts a goburrow TCP handler to Transport.
type tcpTransport struct {
	modbus.Client
	handler *modbus.TCPClientHandler
}

func (t *tcpTransport) SetSlave(id uint8) { t.handler.SlaveId = id }
func (t *tcpTransport) Close() error      { return t.handler.Close() }
