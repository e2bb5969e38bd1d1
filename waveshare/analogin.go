// waveshare/analogin.go
package waveshare

import "fmt"

// Analog input register bases.
const (
	// Input registers: measured values, one per channel.
	regAnalogInputChannels uint16 = 0x0000
	// Holding registers: per-channel control mode.
	regAnalogInputMode uint16 = 0x1000
)

// ControlMode selects how an analog channel's raw 16-bit code maps to
// a physical quantity. On output modules the mode is fixed by board
// jumpers; the enumeration still applies when decoding the register.
type ControlMode uint16

const (
	Control0To10V  ControlMode = 0x0000 // 0–10 V, readings 0–5000 mV
	Control2To10V  ControlMode = 0x0001 // 2–10 V, readings 1000–5000 mV
	Control0To20mA ControlMode = 0x0002 // 0–20 mA, readings 0–20000 µA
	Control4To20mA ControlMode = 0x0003 // 4–20 mA, readings 4000–20000 µA
	ControlRaw     ControlMode = 0x0004 // raw 0–4096 code, caller scales
)

// ControlModeFromCode decodes a control-mode register value. Undefined
// codes fail; there is no default mode.
func ControlModeFromCode(code uint16) (ControlMode, error) {
	switch m := ControlMode(code); m {
	case Control0To10V, Control2To10V, Control0To20mA, Control4To20mA, ControlRaw:
		return m, nil
	}
	return 0, fmt.Errorf("%w: 0x%04x", ErrInvalidControlMode, code)
}

func (m ControlMode) validate() error {
	_, err := ControlModeFromCode(uint16(m))
	return err
}

// AnalogInput drives one 8-channel analog input module.
type AnalogInput struct {
	device
}

// NewAnalogInput builds a handle for the module at slave on bus. The
// handle shares the bus with any number of other handles.
func NewAnalogInput(slave uint8, bus Bus) *AnalogInput {
	return &AnalogInput{device{slave: slave, bus: bus}}
}

// ReadChannel reads one channel's raw measurement code.
func (a *AnalogInput) ReadChannel(ch Channel) (uint16, error) {
	if err := ch.validate(); err != nil {
		return 0, err
	}
	regs, err := a.bus.ReadInputRegisters(a.slave, regAnalogInputChannels+ch.offset(), 1)
	if err != nil {
		return 0, err
	}
	if len(regs) != 1 {
		return 0, fmt.Errorf("waveshare: link returned %d registers, want 1", len(regs))
	}
	return regs[0], nil
}

// ReadChannels reads all eight channels in one transaction, in channel
// order 0–7.
func (a *AnalogInput) ReadChannels() ([]uint16, error) {
	return a.bus.ReadInputRegisters(a.slave, regAnalogInputChannels, NumChannels)
}

// SetControlMode configures one channel's measurement range.
func (a *AnalogInput) SetControlMode(ch Channel, mode ControlMode) error {
	if err := ch.validate(); err != nil {
		return err
	}
	if err := mode.validate(); err != nil {
		return err
	}
	return a.bus.WriteSingleRegister(a.slave, regAnalogInputMode+ch.offset(), uint16(mode))
}

// ReadControlMode reads back one channel's measurement range.
func (a *AnalogInput) ReadControlMode(ch Channel) (ControlMode, error) {
	if err := ch.validate(); err != nil {
		return 0, err
	}
	regs, err := a.bus.ReadHoldingRegisters(a.slave, regAnalogInputMode+ch.offset(), 1)
	if err != nil {
		return 0, err
	}
	if len(regs) != 1 {
		return 0, fmt.Errorf("waveshare: link returned %d registers, want 1", len(regs))
	}
	return ControlModeFromCode(regs[0])
}
