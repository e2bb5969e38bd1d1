// waveshare/fakebus_test.go
package waveshare

// busCall is one recorded link transaction.
type busCall struct {
	op    string
	slave uint8
	addr  uint16
	qty   uint16
	value uint16
	bits  []bool
	regs  []uint16
}

// fakeBus records every transaction and answers with canned data.
type fakeBus struct {
	calls []busCall
	bits  []bool
	regs  []uint16
	err   error
}

func (f *fakeBus) last() busCall { return f.calls[len(f.calls)-1] }

func (f *fakeBus) ReadCoils(slave uint8, addr, qty uint16) ([]bool, error) {
	f.calls = append(f.calls, busCall{op: "read-coils", slave: slave, addr: addr, qty: qty})
	return f.bits, f.err
}

func (f *fakeBus) ReadDiscreteInputs(slave uint8, addr, qty uint16) ([]bool, error) {
	f.calls = append(f.calls, busCall{op: "read-discrete", slave: slave, addr: addr, qty: qty})
	return f.bits, f.err
}

func (f *fakeBus) ReadHoldingRegisters(slave uint8, addr, qty uint16) ([]uint16, error) {
	f.calls = append(f.calls, busCall{op: "read-holding", slave: slave, addr: addr, qty: qty})
	return f.regs, f.err
}

func (f *fakeBus) ReadInputRegisters(slave uint8, addr, qty uint16) ([]uint16, error) {
	f.calls = append(f.calls, busCall{op: "read-input", slave: slave, addr: addr, qty: qty})
	return f.regs, f.err
}

func (f *fakeBus) WriteSingleCoil(slave uint8, addr, value uint16) error {
	f.calls = append(f.calls, busCall{op: "write-coil", slave: slave, addr: addr, value: value})
	return f.err
}

func (f *fakeBus) WriteSingleRegister(slave uint8, addr, value uint16) error {
	f.calls = append(f.calls, busCall{op: "write-register", slave: slave, addr: addr, value: value})
	return f.err
}

func (f *fakeBus) WriteMultipleCoils(slave uint8, addr uint16, values []bool) error {
	bits := append([]bool(nil), values...)
	f.calls = append(f.calls, busCall{op: "write-coils", slave: slave, addr: addr, qty: uint16(len(values)), bits: bits})
	return f.err
}

func (f *fakeBus) WriteMultipleRegisters(slave uint8, addr uint16, values []uint16) error {
	regs := append([]uint16(nil), values...)
	f.calls = append(f.calls, busCall{op: "write-registers", slave: slave, addr: addr, qty: uint16(len(values)), regs: regs})
	return f.err
}
