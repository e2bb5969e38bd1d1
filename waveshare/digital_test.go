// waveshare/digital_test.go
package waveshare

import (
	"errors"
	"testing"
)

func TestWriteOutputsIsOneMultiCoilWrite(t *testing.T) {
	bus := &fakeBus{}
	d := NewDigitalIO(7, bus)

	err := d.WriteOutputs([NumChannels]Action{On, Off, On, Off, On, Off, On, Off})
	if err != nil {
		t.Fatalf("WriteOutputs err=%v", err)
	}

	if len(bus.calls) != 1 {
		t.Fatalf("expected exactly 1 transaction, got %d", len(bus.calls))
	}
	c := bus.last()
	if c.op != "write-coils" || c.slave != 7 || c.addr != 0x0000 || c.qty != 8 {
		t.Fatalf("unexpected transaction: %+v", c)
	}
	want := []bool{true, false, true, false, true, false, true, false}
	for i := range want {
		if c.bits[i] != want[i] {
			t.Fatalf("coil %d: got %v want %v", i, c.bits[i], want[i])
		}
	}
}

func TestWriteOutputsRejectsUndefinedAction(t *testing.T) {
	bus := &fakeBus{}
	d := NewDigitalIO(7, bus)

	var actions [NumChannels]Action
	actions[3] = Action(0x00FF)

	if err := d.WriteOutputs(actions); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
	if len(bus.calls) != 0 {
		t.Fatal("no transaction may be issued for an invalid action")
	}
}

func TestWriteOutputEncodesCoilConvention(t *testing.T) {
	bus := &fakeBus{}
	d := NewDigitalIO(2, bus)

	if err := d.WriteOutput(3, On); err != nil {
		t.Fatalf("WriteOutput err=%v", err)
	}
	c := bus.last()
	if c.op != "write-coil" || c.addr != 0x0003 || c.value != 0xFF00 {
		t.Fatalf("On: unexpected transaction: %+v", c)
	}

	if err := d.WriteOutput(5, Off); err != nil {
		t.Fatalf("WriteOutput err=%v", err)
	}
	c = bus.last()
	if c.addr != 0x0005 || c.value != 0x0000 {
		t.Fatalf("Off: unexpected transaction: %+v", c)
	}
}

func TestControlAllCoil(t *testing.T) {
	bus := &fakeBus{}
	d := NewDigitalIO(2, bus)

	if err := d.OpenAllOutputs(); err != nil {
		t.Fatalf("OpenAllOutputs err=%v", err)
	}
	c := bus.last()
	if c.op != "write-coil" || c.addr != 0x00FF || c.value != 0xFF00 {
		t.Fatalf("open-all: unexpected transaction: %+v", c)
	}

	if err := d.CloseAllOutputs(); err != nil {
		t.Fatalf("CloseAllOutputs err=%v", err)
	}
	c = bus.last()
	if c.addr != 0x00FF || c.value != 0x0000 {
		t.Fatalf("close-all: unexpected transaction: %+v", c)
	}
}

func TestFlashIntervalAddresses(t *testing.T) {
	bus := &fakeBus{}
	d := NewDigitalIO(1, bus)

	for ch := Channel(0); ch < NumChannels; ch++ {
		if err := d.FlashOn(ch, 10); err != nil {
			t.Fatalf("FlashOn(%d) err=%v", ch, err)
		}
		if got := bus.last().addr; got != 0x0200+uint16(ch) {
			t.Fatalf("flash-on channel %d: addr 0x%04x", ch, got)
		}

		if err := d.FlashOff(ch, 20); err != nil {
			t.Fatalf("FlashOff(%d) err=%v", ch, err)
		}
		if got := bus.last().addr; got != 0x0400+uint16(ch) {
			t.Fatalf("flash-off channel %d: addr 0x%04x", ch, got)
		}
	}
}

func TestReadInputAddresses(t *testing.T) {
	bus := &fakeBus{bits: []bool{true}}
	d := NewDigitalIO(1, bus)

	for ch := Channel(0); ch < NumChannels; ch++ {
		on, err := d.ReadInput(ch)
		if err != nil {
			t.Fatalf("ReadInput(%d) err=%v", ch, err)
		}
		if !on {
			t.Fatalf("ReadInput(%d) = false, want true", ch)
		}
		c := bus.last()
		if c.op != "read-discrete" || c.addr != uint16(ch) || c.qty != 1 {
			t.Fatalf("channel %d: unexpected transaction: %+v", ch, c)
		}
	}
}

func TestReadInputRejectsEmptyResponse(t *testing.T) {
	bus := &fakeBus{bits: nil}
	d := NewDigitalIO(1, bus)

	if _, err := d.ReadInput(0); err == nil {
		t.Fatal("empty response must not decode to false")
	}
}

func TestReadInputsAndOutputs(t *testing.T) {
	bus := &fakeBus{bits: make([]bool, 8)}
	d := NewDigitalIO(4, bus)

	if _, err := d.ReadInputs(); err != nil {
		t.Fatalf("ReadInputs err=%v", err)
	}
	c := bus.last()
	if c.op != "read-discrete" || c.addr != 0x0000 || c.qty != 8 {
		t.Fatalf("read-inputs: unexpected transaction: %+v", c)
	}

	if _, err := d.ReadOutputs(); err != nil {
		t.Fatalf("ReadOutputs err=%v", err)
	}
	c = bus.last()
	if c.op != "read-coils" || c.addr != 0x0000 || c.qty != 8 {
		t.Fatalf("read-outputs: unexpected transaction: %+v", c)
	}
}

func TestOutputModeRoundTrip(t *testing.T) {
	bus := &fakeBus{}
	d := NewDigitalIO(1, bus)

	if err := d.SetOutputMode(2, OutputFlip); err != nil {
		t.Fatalf("SetOutputMode err=%v", err)
	}
	c := bus.last()
	if c.op != "write-register" || c.addr != 0x1002 || c.value != 0x0002 {
		t.Fatalf("set-mode: unexpected transaction: %+v", c)
	}

	bus.regs = []uint16{0x0001}
	mode, err := d.ReadOutputMode(2)
	if err != nil {
		t.Fatalf("ReadOutputMode err=%v", err)
	}
	if mode != OutputLinked {
		t.Fatalf("mode: got %v want OutputLinked", mode)
	}

	bus.regs = []uint16{0x0003}
	if _, err := d.ReadOutputMode(2); !errors.Is(err, ErrInvalidControlMode) {
		t.Fatalf("undefined mode code must fail, got %v", err)
	}
}

func TestDigitalChannelValidation(t *testing.T) {
	bus := &fakeBus{}
	d := NewDigitalIO(1, bus)

	if err := d.WriteOutput(8, On); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("expected ErrInvalidChannel, got %v", err)
	}
	if err := d.FlashOn(255, 1); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("expected ErrInvalidChannel, got %v", err)
	}
	if _, err := d.ReadInput(9); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("expected ErrInvalidChannel, got %v", err)
	}
	if len(bus.calls) != 0 {
		t.Fatal("invalid channel must be rejected before any transaction")
	}
}
