// waveshare/digital.go
package waveshare

import "fmt"

// Digital I/O address bases.
const (
	// Coils: output channels, then the write-only control-all coil.
	coilDigitalOutputs uint16 = 0x0000
	coilControlAll     uint16 = 0x00FF
	// Discrete inputs: input channels.
	inputDigitalInputs uint16 = 0x0000
	// Holding registers: flash intervals and per-channel behavior mode.
	regFlashOnInterval  uint16 = 0x0200
	regFlashOffInterval uint16 = 0x0400
	regOutputMode       uint16 = 0x1000
)

// Action is the wire encoding of a single-coil command: 0xFF00 switches
// the output on, 0x0000 off. These are the only two values the encoder
// ever produces; they are the Modbus convention, not booleans.
type Action uint16

const (
	On  Action = 0xFF00
	Off Action = 0x0000
)

// ActionFromBool converts a logical state to its wire encoding.
func ActionFromBool(on bool) Action {
	if on {
		return On
	}
	return Off
}

// ActionFromCode decodes a coil command word; anything but the two
// defined encodings fails.
func ActionFromCode(code uint16) (Action, error) {
	switch a := Action(code); a {
	case On, Off:
		return a, nil
	}
	return 0, fmt.Errorf("%w: 0x%04x", ErrInvalidAction, code)
}

func (a Action) validate() error {
	_, err := ActionFromCode(uint16(a))
	return err
}

// OutputMode is the per-channel behavior of a digital output.
type OutputMode uint16

const (
	OutputCommand OutputMode = 0x0000 // driven by write commands only
	OutputLinked  OutputMode = 0x0001 // follows the matching input channel
	OutputFlip    OutputMode = 0x0002 // toggles on the matching input edge
)

// OutputModeFromCode decodes a behavior-mode register value; undefined
// codes fail.
func OutputModeFromCode(code uint16) (OutputMode, error) {
	switch m := OutputMode(code); m {
	case OutputCommand, OutputLinked, OutputFlip:
		return m, nil
	}
	return 0, fmt.Errorf("%w: 0x%04x", ErrInvalidControlMode, code)
}

func (m OutputMode) validate() error {
	_, err := OutputModeFromCode(uint16(m))
	return err
}

// DigitalIO drives one 8-in/8-out digital module.
type DigitalIO struct {
	device
}

// NewDigitalIO builds a handle for the module at slave on bus.
func NewDigitalIO(slave uint8, bus Bus) *DigitalIO {
	return &DigitalIO{device{slave: slave, bus: bus}}
}

// WriteOutput switches one output channel.
func (d *DigitalIO) WriteOutput(ch Channel, action Action) error {
	if err := ch.validate(); err != nil {
		return err
	}
	if err := action.validate(); err != nil {
		return err
	}
	return d.bus.WriteSingleCoil(d.slave, coilDigitalOutputs+ch.offset(), uint16(action))
}

// WriteOutputs switches all eight output channels in ONE multi-coil
// transaction. Eight single writes would let another bus user observe
// (or disturb) a half-applied bank, so the all-at-once form is part of
// the contract, not an optimization.
func (d *DigitalIO) WriteOutputs(actions [NumChannels]Action) error {
	var values [NumChannels]bool
	for i, a := range actions {
		if err := a.validate(); err != nil {
			return err
		}
		values[i] = a == On
	}
	return d.bus.WriteMultipleCoils(d.slave, coilDigitalOutputs, values[:])
}

// WriteBank applies an IOBank to the outputs in one transaction.
func (d *DigitalIO) WriteBank(bank IOBank) error {
	return d.WriteOutputs(bank.Actions())
}

// OpenAllOutputs forces every output on via the control-all coil.
func (d *DigitalIO) OpenAllOutputs() error {
	return d.bus.WriteSingleCoil(d.slave, coilControlAll, uint16(On))
}

// CloseAllOutputs forces every output off via the control-all coil.
func (d *DigitalIO) CloseAllOutputs() error {
	return d.bus.WriteSingleCoil(d.slave, coilControlAll, uint16(Off))
}

// FlashOn sets one channel's flash-on interval. The unit of interval
// is defined by the hardware (100 ms steps on current firmware) and is
// opaque to this layer.
func (d *DigitalIO) FlashOn(ch Channel, interval uint16) error {
	if err := ch.validate(); err != nil {
		return err
	}
	return d.bus.WriteSingleRegister(d.slave, regFlashOnInterval+ch.offset(), interval)
}

// FlashOff sets one channel's flash-off interval.
func (d *DigitalIO) FlashOff(ch Channel, interval uint16) error {
	if err := ch.validate(); err != nil {
		return err
	}
	return d.bus.WriteSingleRegister(d.slave, regFlashOffInterval+ch.offset(), interval)
}

// ReadInput reads one input channel. An empty or truncated response is
// an error, never a fabricated false.
func (d *DigitalIO) ReadInput(ch Channel) (bool, error) {
	if err := ch.validate(); err != nil {
		return false, err
	}
	bits, err := d.bus.ReadDiscreteInputs(d.slave, inputDigitalInputs+ch.offset(), 1)
	if err != nil {
		return false, err
	}
	if len(bits) != 1 {
		return false, fmt.Errorf("waveshare: link returned %d bits, want 1", len(bits))
	}
	return bits[0], nil
}

// ReadInputs reads all eight input channels in one transaction.
func (d *DigitalIO) ReadInputs() ([]bool, error) {
	return d.bus.ReadDiscreteInputs(d.slave, inputDigitalInputs, NumChannels)
}

// ReadOutputs reads back the current state of all eight output coils.
func (d *DigitalIO) ReadOutputs() ([]bool, error) {
	return d.bus.ReadCoils(d.slave, coilDigitalOutputs, NumChannels)
}

// SetOutputMode configures one output channel's behavior.
func (d *DigitalIO) SetOutputMode(ch Channel, mode OutputMode) error {
	if err := ch.validate(); err != nil {
		return err
	}
	if err := mode.validate(); err != nil {
		return err
	}
	return d.bus.WriteSingleRegister(d.slave, regOutputMode+ch.offset(), uint16(mode))
}

// ReadOutputMode reads back one output channel's behavior.
func (d *DigitalIO) ReadOutputMode(ch Channel) (OutputMode, error) {
	if err := ch.validate(); err != nil {
		return 0, err
	}
	regs, err := d.bus.ReadHoldingRegisters(d.slave, regOutputMode+ch.offset(), 1)
	if err != nil {
		return 0, err
	}
	if len(regs) != 1 {
		return 0, fmt.Errorf("waveshare: link returned %d registers, want 1", len(regs))
	}
	return OutputModeFromCode(regs[0])
}
