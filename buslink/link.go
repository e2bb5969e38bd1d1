// buslink/link.go
package buslink

import (
	"sync"
)

// Transport is the subset of the collaborator's Modbus client the link
// drives, plus slave selection and teardown. goburrow keeps the slave
// address on the handler rather than per request, which is why SetSlave
// exists as a discrete step.
type Transport interface {
	ReadCoils(address, quantity uint16) ([]byte, error)
	ReadDiscreteInputs(address, quantity uint16) ([]byte, error)
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
	WriteSingleCoil(address, value uint16) ([]byte, error)
	WriteSingleRegister(address, value uint16) ([]byte, error)
	WriteMultipleCoils(address, quantity uint16, value []byte) ([]byte, error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
	MaskWriteRegister(address, andMask, orMask uint16) ([]byte, error)
	ReadWriteMultipleRegisters(readAddress, readQuantity, writeAddress, writeQuantity uint16, value []byte) ([]byte, error)
	SetSlave(id uint8)
	Close() error
}

// Link shares one physical Modbus connection between any number of
// device handles. Every call selects the target slave and performs
// exactly one transaction inside the same critical section, so no
// concurrent caller can slip a request between another caller's
// slave-select and its transaction.
//
// The link does not retry and carries no timeout of its own; both are
// the transport's responsibility.
type Link struct {
	mu sync.Mutex
	tr Transport
}

// New wraps an already-connected transport.
func New(tr Transport) *Link {
	return &Link{tr: tr}
}

// Close tears down the underlying connection.
func (l *Link) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tr.Close()
}

// ---- bit access ----

// ReadCoils reads qty coil states from slave starting at addr (FC 1).
func (l *Link) ReadCoils(slave uint8, addr, qty uint16) ([]bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	data, err := l.tr.ReadCoils(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackBits(data, int(qty))
}

// ReadDiscreteInputs reads qty input states from slave starting at addr (FC 2).
func (l *Link) ReadDiscreteInputs(slave uint8, addr, qty uint16) ([]bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	data, err := l.tr.ReadDiscreteInputs(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackBits(data, int(qty))
}

// WriteSingleCoil writes one coil on slave (FC 5). value is the wire
// encoding: 0xFF00 for on, 0x0000 for off. It is passed through
// untouched; the caller owns the encoding.
func (l *Link) WriteSingleCoil(slave uint8, addr, value uint16) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	_, err := l.tr.WriteSingleCoil(addr, value)
	return err
}

// WriteMultipleCoils writes len(values) coils on slave in one
// transaction (FC 15).
func (l *Link) WriteMultipleCoils(slave uint8, addr uint16, values []bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	_, err := l.tr.WriteMultipleCoils(addr, uint16(len(values)), packBits(values))
	return err
}

// ---- register access ----

// ReadHoldingRegisters reads qty holding registers from slave (FC 3).
func (l *Link) ReadHoldingRegisters(slave uint8, addr, qty uint16) ([]uint16, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	data, err := l.tr.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(data, int(qty))
}

// ReadInputRegisters reads qty input registers from slave (FC 4).
func (l *Link) ReadInputRegisters(slave uint8, addr, qty uint16) ([]uint16, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	data, err := l.tr.ReadInputRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(data, int(qty))
}

// WriteSingleRegister writes one holding register on slave (FC 6).
func (l *Link) WriteSingleRegister(slave uint8, addr, value uint16) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	_, err := l.tr.WriteSingleRegister(addr, value)
	return err
}

// WriteMultipleRegisters writes len(values) holding registers on slave
// in one transaction (FC 16).
func (l *Link) WriteMultipleRegisters(slave uint8, addr uint16, values []uint16) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	_, err := l.tr.WriteMultipleRegisters(addr, uint16(len(values)), packRegisters(values))
	return err
}

// MaskWriteRegister applies and/or masks to one holding register on
// slave (FC 22).
func (l *Link) MaskWriteRegister(slave uint8, addr, andMask, orMask uint16) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	_, err := l.tr.MaskWriteRegister(addr, andMask, orMask)
	return err
}

// ReadWriteMultipleRegisters writes values at writeAddr and reads
// readQty registers from readAddr in one combined transaction (FC 23).
func (l *Link) ReadWriteMultipleRegisters(slave uint8, readAddr, readQty, writeAddr uint16, values []uint16) ([]uint16, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tr.SetSlave(slave)
	data, err := l.tr.ReadWriteMultipleRegisters(readAddr, readQty, writeAddr, uint16(len(values)), packRegisters(values))
	if err != nil {
		return nil, err
	}
	return unpackRegisters(data, int(readQty))
}
