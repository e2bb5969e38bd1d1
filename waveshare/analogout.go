// waveshare/analogout.go
package waveshare

import "fmt"

// Analog output register base. The output range itself is jumper-set
// on the board, so unlike the input module there is no mode register;
// ControlMode is only used to interpret the raw codes.
const (
	// Holding registers: current output value, one per channel.
	regAnalogOutputChannels uint16 = 0x0000
)

// AnalogOutput drives one 8-channel analog output module.
type AnalogOutput struct {
	device
}

// NewAnalogOutput builds a handle for the module at slave on bus.
func NewAnalogOutput(slave uint8, bus Bus) *AnalogOutput {
	return &AnalogOutput{device{slave: slave, bus: bus}}
}

// ReadChannel reads one channel's current raw output code.
func (a *AnalogOutput) ReadChannel(ch Channel) (uint16, error) {
	if err := ch.validate(); err != nil {
		return 0, err
	}
	regs, err := a.bus.ReadHoldingRegisters(a.slave, regAnalogOutputChannels+ch.offset(), 1)
	if err != nil {
		return 0, err
	}
	if len(regs) != 1 {
		return 0, fmt.Errorf("waveshare: link returned %d registers, want 1", len(regs))
	}
	return regs[0], nil
}

// ReadChannels reads all eight output codes in one transaction.
func (a *AnalogOutput) ReadChannels() ([]uint16, error) {
	return a.bus.ReadHoldingRegisters(a.slave, regAnalogOutputChannels, NumChannels)
}

// WriteChannel sets one channel's raw output code.
func (a *AnalogOutput) WriteChannel(ch Channel, value uint16) error {
	if err := ch.validate(); err != nil {
		return err
	}
	return a.bus.WriteSingleRegister(a.slave, regAnalogOutputChannels+ch.offset(), value)
}

// WriteChannels sets all eight output codes in one transaction.
func (a *AnalogOutput) WriteChannels(values [NumChannels]uint16) error {
	return a.bus.WriteMultipleRegisters(a.slave, regAnalogOutputChannels, values[:])
}
