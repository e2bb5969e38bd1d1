// waveshare/common.go
package waveshare

import "fmt"

// NumChannels is the channel count on every module class.
const NumChannels = 8

// Modbus slave address limits (broadcast excluded).
const (
	AddressMin = 1
	AddressMax = 247
)

// Holding registers shared by every module class.
const (
	regUARTParameters  uint16 = 0x2000
	regDeviceAddress   uint16 = 0x4000
	regFirmwareVersion uint16 = 0x8000
)

// Channel indexes one of the eight I/O channels on a module. The zero
// value is channel 0. Values outside 0–7 are rejected before any
// address arithmetic happens.
type Channel uint8

// NewChannel validates n.
func NewChannel(n uint8) (Channel, error) {
	ch := Channel(n)
	return ch, ch.validate()
}

func (c Channel) validate() error {
	if c >= NumChannels {
		return fmt.Errorf("%w: %d", ErrInvalidChannel, uint8(c))
	}
	return nil
}

// offset is the address delta of this channel from a register base.
func (c Channel) offset() uint16 { return uint16(c) }

// Baud is the coded serial speed stored in the UART parameter register.
type Baud uint16

const (
	Baud4800   Baud = 0x00
	Baud9600   Baud = 0x01
	Baud19200  Baud = 0x02
	Baud38400  Baud = 0x03
	Baud57600  Baud = 0x04
	Baud115200 Baud = 0x05
	Baud128000 Baud = 0x06
	Baud256000 Baud = 0x07
)

// BaudFromCode decodes a baud code; undefined codes fail.
func BaudFromCode(code uint16) (Baud, error) {
	b := Baud(code)
	if b > Baud256000 {
		return 0, fmt.Errorf("%w: 0x%04x", ErrInvalidBaud, code)
	}
	return b, nil
}

// Parity is the coded parity stored in the UART parameter register.
type Parity uint16

const (
	ParityNone Parity = 0x00
	ParityEven Parity = 0x01
	ParityOdd  Parity = 0x02
)

// ParityFromCode decodes a parity code; undefined codes fail.
func ParityFromCode(code uint16) (Parity, error) {
	p := Parity(code)
	if p > ParityOdd {
		return 0, fmt.Errorf("%w: 0x%04x", ErrInvalidParity, code)
	}
	return p, nil
}

// encodeUARTParams packs parity into the high byte and baud into the
// low byte, the register layout the hardware expects.
func encodeUARTParams(baud Baud, parity Parity) uint16 {
	return uint16(parity)<<8 | uint16(baud)
}

// decodeUARTParams is the inverse of encodeUARTParams.
func decodeUARTParams(word uint16) (Baud, Parity, error) {
	baud, err := BaudFromCode(word & 0x00FF)
	if err != nil {
		return 0, 0, err
	}
	parity, err := ParityFromCode(word >> 8)
	if err != nil {
		return 0, 0, err
	}
	return baud, parity, nil
}

// device carries the identity every module class shares: the slave
// address and the link it talks through. Embedding it gives each
// facade the common capability set without per-class reimplementation.
type device struct {
	slave uint8
	bus   Bus
}

// SlaveAddress is the bus address this handle was built with.
func (d *device) SlaveAddress() uint8 { return d.slave }

// SetUARTParameters reconfigures the module's serial link. The change
// takes effect on the device side; reopening the transport with the
// new settings is the caller's business.
func (d *device) SetUARTParameters(baud Baud, parity Parity) error {
	if _, err := BaudFromCode(uint16(baud)); err != nil {
		return err
	}
	if _, err := ParityFromCode(uint16(parity)); err != nil {
		return err
	}
	return d.bus.WriteSingleRegister(d.slave, regUARTParameters, encodeUARTParams(baud, parity))
}

// UARTParameters reads back the module's serial settings.
func (d *device) UARTParameters() (Baud, Parity, error) {
	regs, err := d.bus.ReadHoldingRegisters(d.slave, regUARTParameters, 1)
	if err != nil {
		return 0, 0, err
	}
	if len(regs) != 1 {
		return 0, 0, fmt.Errorf("waveshare: link returned %d registers, want 1", len(regs))
	}
	return decodeUARTParams(regs[0])
}

// SetDeviceAddress assigns a new slave address to the module. The
// handle keeps addressing the old one; build a new handle after the
// device moves.
func (d *device) SetDeviceAddress(addr uint8) error {
	if addr < AddressMin || addr > AddressMax {
		return fmt.Errorf("%w: %d", ErrInvalidAddress, addr)
	}
	return d.bus.WriteSingleRegister(d.slave, regDeviceAddress, uint16(addr))
}

// FirmwareVersion reads the module's firmware version word.
func (d *device) FirmwareVersion() (uint16, error) {
	regs, err := d.bus.ReadHoldingRegisters(d.slave, regFirmwareVersion, 1)
	if err != nil {
		return 0, err
	}
	if len(regs) != 1 {
		return 0, fmt.Errorf("waveshare: link returned %d registers, want 1", len(regs))
	}
	return regs[0], nil
}
