// waveshare/analogout_test.go
package waveshare

import (
	"errors"
	"testing"
)

func TestAnalogOutputWriteChannel(t *testing.T) {
	bus := &fakeBus{}
	a := NewAnalogOutput(5, bus)

	for ch := Channel(0); ch < NumChannels; ch++ {
		if err := a.WriteChannel(ch, 0x0800); err != nil {
			t.Fatalf("WriteChannel(%d) err=%v", ch, err)
		}
		c := bus.last()
		if c.op != "write-register" || c.slave != 5 || c.addr != uint16(ch) || c.value != 0x0800 {
			t.Fatalf("channel %d: unexpected transaction: %+v", ch, c)
		}
	}
}

func TestAnalogOutputWriteChannelsIsOneWrite(t *testing.T) {
	bus := &fakeBus{}
	a := NewAnalogOutput(5, bus)

	values := [NumChannels]uint16{1, 2, 3, 4, 5, 6, 7, 8}
	if err := a.WriteChannels(values); err != nil {
		t.Fatalf("WriteChannels err=%v", err)
	}

	if len(bus.calls) != 1 {
		t.Fatalf("expected exactly 1 transaction, got %d", len(bus.calls))
	}
	c := bus.last()
	if c.op != "write-registers" || c.addr != 0x0000 || c.qty != 8 {
		t.Fatalf("unexpected transaction: %+v", c)
	}
	for i := range values {
		if c.regs[i] != values[i] {
			t.Fatalf("register %d: got %d want %d", i, c.regs[i], values[i])
		}
	}
}

func TestAnalogOutputReadChannel(t *testing.T) {
	bus := &fakeBus{regs: []uint16{0x0C00}}
	a := NewAnalogOutput(5, bus)

	v, err := a.ReadChannel(6)
	if err != nil {
		t.Fatalf("ReadChannel err=%v", err)
	}
	if v != 0x0C00 {
		t.Fatalf("value: got 0x%04x", v)
	}
	c := bus.last()
	if c.op != "read-holding" || c.addr != 0x0006 || c.qty != 1 {
		t.Fatalf("unexpected transaction: %+v", c)
	}
}

func TestAnalogOutputChannelValidation(t *testing.T) {
	bus := &fakeBus{}
	a := NewAnalogOutput(5, bus)

	if err := a.WriteChannel(8, 0); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("expected ErrInvalidChannel, got %v", err)
	}
	if len(bus.calls) != 0 {
		t.Fatal("invalid channel must be rejected before any transaction")
	}
}
