// cmd/wavectl/main.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/emgardner/waveshare-modbus/buslink"
	"github.com/emgardner/waveshare-modbus/internal/config"
	"github.com/emgardner/waveshare-modbus/waveshare"
)

const usage = `usage: wavectl <config.yaml> <device-id> <op> [args]

ops (any class):
  version
  uart
  set-uart <baud> <N|E|O>
  set-address <1-247>

ops (digital):
  read-inputs | read-outputs
  write <ch> <on|off>
  write-all <on|off> x8
  open-all | close-all
  flash-on <ch> <interval> | flash-off <ch> <interval>
  mode <ch> | set-mode <ch> <command|linked|flip>

ops (analog_in):
  read <ch> | read-all
  mode <ch> | set-mode <ch> <0-10v|2-10v|0-20ma|4-20ma|raw>

ops (analog_out):
  read <ch> | read-all | write <ch> <value>`

func main() {
	if len(os.Args) < 4 {
		log.Fatal(usage)
	}

	cfgPath, deviceID, op := os.Args[1], os.Args[2], os.Args[3]
	args := os.Args[4:]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	var dev *config.DeviceConfig
	for i := range cfg.Devices {
		if cfg.Devices[i].ID == deviceID {
			dev = &cfg.Devices[i]
			break
		}
	}
	if dev == nil {
		log.Fatalf("device %q not in config", deviceID)
	}

	// --------------------
	// Open the shared link
	// --------------------

	link, err := dial(cfg.Bus)
	if err != nil {
		log.Fatalf("dial failed: %v", err)
	}
	defer link.Close()

	switch dev.Class {
	case config.ClassDigital:
		err = runDigital(waveshare.NewDigitalIO(dev.UnitID, link), op, args)
	case config.ClassAnalogInput:
		err = runAnalogInput(waveshare.NewAnalogInput(dev.UnitID, link), op, args)
	case config.ClassAnalogOutput:
		err = runAnalogOutput(waveshare.NewAnalogOutput(dev.UnitID, link), op, args)
	}
	if err != nil {
		if code, ok := buslink.ExceptionCode(err); ok {
			log.Fatalf("device exception 0x%02x: %v", code, err)
		}
		log.Fatalf("%v", err)
	}
}

func dial(bus config.BusConfig) (*buslink.Link, error) {
	timeout := time.Duration(bus.TimeoutMs) * time.Millisecond

	switch bus.Transport {
	case config.TransportRTU:
		return buslink.DialRTU(buslink.RTUConfig{
			Device:   bus.Device,
			BaudRate: bus.BaudRate,
			DataBits: bus.DataBits,
			Parity:   bus.Parity,
			StopBits: bus.StopBits,
			Timeout:  timeout,
		})
	case config.TransportTCP:
		return buslink.DialTCP(buslink.TCPConfig{
			Endpoint: bus.Endpoint,
			Timeout:  timeout,
		})
	}
	return nil, fmt.Errorf("unknown transport %q", bus.Transport)
}

// commonOps is the capability set every module class shares.
type commonOps interface {
	SetUARTParameters(waveshare.Baud, waveshare.Parity) error
	UARTParameters() (waveshare.Baud, waveshare.Parity, error)
	SetDeviceAddress(uint8) error
	FirmwareVersion() (uint16, error)
}

// runCommon handles class-independent ops. handled=false means op
// belongs to the class-specific dispatcher.
func runCommon(dev commonOps, op string, args []string) (bool, error) {
	switch op {
	case "version":
		v, err := dev.FirmwareVersion()
		if err != nil {
			return true, err
		}
		log.Printf("firmware version: 0x%04x", v)
		return true, nil

	case "uart":
		baud, parity, err := dev.UARTParameters()
		if err != nil {
			return true, err
		}
		log.Printf("uart: baud=%s parity=%s", baudName(baud), parityName(parity))
		return true, nil

	case "set-uart":
		if len(args) != 2 {
			return true, errors.New("set-uart needs <baud> <N|E|O>")
		}
		baud, err := parseBaud(args[0])
		if err != nil {
			return true, err
		}
		parity, err := parseParity(args[1])
		if err != nil {
			return true, err
		}
		return true, dev.SetUARTParameters(baud, parity)

	case "set-address":
		if len(args) != 1 {
			return true, errors.New("set-address needs <1-247>")
		}
		n, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return true, fmt.Errorf("address %q: %w", args[0], err)
		}
		return true, dev.SetDeviceAddress(uint8(n))
	}

	return false, nil
}

func runDigital(d *waveshare.DigitalIO, op string, args []string) error {
	if handled, err := runCommon(d, op, args); handled {
		return err
	}

	switch op {
	case "read-inputs":
		bits, err := d.ReadInputs()
		if err != nil {
			return err
		}
		log.Printf("inputs: %v", bits)
		return nil

	case "read-outputs":
		bits, err := d.ReadOutputs()
		if err != nil {
			return err
		}
		log.Printf("outputs: %v", bits)
		return nil

	case "write":
		if len(args) != 2 {
			return errors.New("write needs <ch> <on|off>")
		}
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		action, err := parseAction(args[1])
		if err != nil {
			return err
		}
		return d.WriteOutput(ch, action)

	case "write-all":
		if len(args) != waveshare.NumChannels {
			return fmt.Errorf("write-all needs %d on|off arguments", waveshare.NumChannels)
		}
		var actions [waveshare.NumChannels]waveshare.Action
		for i, a := range args {
			action, err := parseAction(a)
			if err != nil {
				return err
			}
			actions[i] = action
		}
		return d.WriteOutputs(actions)

	case "open-all":
		return d.OpenAllOutputs()

	case "close-all":
		return d.CloseAllOutputs()

	case "flash-on", "flash-off":
		if len(args) != 2 {
			return fmt.Errorf("%s needs <ch> <interval>", op)
		}
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		interval, err := parseWord(args[1])
		if err != nil {
			return err
		}
		if op == "flash-on" {
			return d.FlashOn(ch, interval)
		}
		return d.FlashOff(ch, interval)

	case "mode":
		if len(args) != 1 {
			return errors.New("mode needs <ch>")
		}
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		mode, err := d.ReadOutputMode(ch)
		if err != nil {
			return err
		}
		log.Printf("channel %s mode: %s", args[0], outputModeName(mode))
		return nil

	case "set-mode":
		if len(args) != 2 {
			return errors.New("set-mode needs <ch> <command|linked|flip>")
		}
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		mode, err := parseOutputMode(args[1])
		if err != nil {
			return err
		}
		return d.SetOutputMode(ch, mode)
	}

	return fmt.Errorf("unknown digital op %q", op)
}

func runAnalogInput(a *waveshare.AnalogInput, op string, args []string) error {
	if handled, err := runCommon(a, op, args); handled {
		return err
	}

	switch op {
	case "read":
		if len(args) != 1 {
			return errors.New("read needs <ch>")
		}
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		v, err := a.ReadChannel(ch)
		if err != nil {
			return err
		}
		log.Printf("channel %s: %d", args[0], v)
		return nil

	case "read-all":
		values, err := a.ReadChannels()
		if err != nil {
			return err
		}
		log.Printf("channels: %v", values)
		return nil

	case "mode":
		if len(args) != 1 {
			return errors.New("mode needs <ch>")
		}
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		mode, err := a.ReadControlMode(ch)
		if err != nil {
			return err
		}
		log.Printf("channel %s mode: %s", args[0], controlModeName(mode))
		return nil

	case "set-mode":
		if len(args) != 2 {
			return errors.New("set-mode needs <ch> <0-10v|2-10v|0-20ma|4-20ma|raw>")
		}
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		mode, err := parseControlMode(args[1])
		if err != nil {
			return err
		}
		return a.SetControlMode(ch, mode)
	}

	return fmt.Errorf("unknown analog_in op %q", op)
}

func runAnalogOutput(a *waveshare.AnalogOutput, op string, args []string) error {
	if handled, err := runCommon(a, op, args); handled {
		return err
	}

	switch op {
	case "read":
		if len(args) != 1 {
			return errors.New("read needs <ch>")
		}
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		v, err := a.ReadChannel(ch)
		if err != nil {
			return err
		}
		log.Printf("channel %s: %d", args[0], v)
		return nil

	case "read-all":
		values, err := a.ReadChannels()
		if err != nil {
			return err
		}
		log.Printf("channels: %v", values)
		return nil

	case "write":
		if len(args) != 2 {
			return errors.New("write needs <ch> <value>")
		}
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		v, err := parseWord(args[1])
		if err != nil {
			return err
		}
		return a.WriteChannel(ch, v)
	}

	return fmt.Errorf("unknown analog_out op %q", op)
}

// ---- argument parsing ----

func parseChannel(s string) (waveshare.Channel, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("channel %q: %w", s, err)
	}
	return waveshare.NewChannel(uint8(n))
}

func parseWord(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("value %q: %w", s, err)
	}
	return uint16(n), nil
}

func parseAction(s string) (waveshare.Action, error) {
	switch s {
	case "on":
		return waveshare.On, nil
	case "off":
		return waveshare.Off, nil
	}
	return 0, fmt.Errorf("action %q: want on or off", s)
}

func parseOutputMode(s string) (waveshare.OutputMode, error) {
	switch s {
	case "command":
		return waveshare.OutputCommand, nil
	case "linked":
		return waveshare.OutputLinked, nil
	case "flip":
		return waveshare.OutputFlip, nil
	}
	return 0, fmt.Errorf("mode %q: want command, linked or flip", s)
}

func parseControlMode(s string) (waveshare.ControlMode, error) {
	switch s {
	case "0-10v":
		return waveshare.Control0To10V, nil
	case "2-10v":
		return waveshare.Control2To10V, nil
	case "0-20ma":
		return waveshare.Control0To20mA, nil
	case "4-20ma":
		return waveshare.Control4To20mA, nil
	case "raw":
		return waveshare.ControlRaw, nil
	}
	return 0, fmt.Errorf("mode %q: want 0-10v, 2-10v, 0-20ma, 4-20ma or raw", s)
}

func parseBaud(s string) (waveshare.Baud, error) {
	switch s {
	case "4800":
		return waveshare.Baud4800, nil
	case "9600":
		return waveshare.Baud9600, nil
	case "19200":
		return waveshare.Baud19200, nil
	case "38400":
		return waveshare.Baud38400, nil
	case "57600":
		return waveshare.Baud57600, nil
	case "115200":
		return waveshare.Baud115200, nil
	case "128000":
		return waveshare.Baud128000, nil
	case "256000":
		return waveshare.Baud256000, nil
	}
	return 0, fmt.Errorf("baud %q not supported by the hardware", s)
}

func parseParity(s string) (waveshare.Parity, error) {
	switch s {
	case "N":
		return waveshare.ParityNone, nil
	case "E":
		return waveshare.ParityEven, nil
	case "O":
		return waveshare.ParityOdd, nil
	}
	return 0, fmt.Errorf("parity %q: want N, E or O", s)
}

// ---- display names ----

func baudName(b waveshare.Baud) string {
	names := map[waveshare.Baud]string{
		waveshare.Baud4800:   "4800",
		waveshare.Baud9600:   "9600",
		waveshare.Baud19200:  "19200",
		waveshare.Baud38400:  "38400",
		waveshare.Baud57600:  "57600",
		waveshare.Baud115200: "115200",
		waveshare.Baud128000: "128000",
		waveshare.Baud256000: "256000",
	}
	if n, ok := names[b]; ok {
		return n
	}
	return fmt.Sprintf("0x%04x", uint16(b))
}

func parityName(p waveshare.Parity) string {
	switch p {
	case waveshare.ParityNone:
		return "N"
	case waveshare.ParityEven:
		return "E"
	case waveshare.ParityOdd:
		return "O"
	}
	return fmt.Sprintf("0x%04x", uint16(p))
}

func outputModeName(m waveshare.OutputMode) string {
	switch m {
	case waveshare.OutputCommand:
		return "command"
	case waveshare.OutputLinked:
		return "linked"
	case waveshare.OutputFlip:
		return "flip"
	}
	return fmt.Sprintf("0x%04x", uint16(m))
}

func controlModeName(m waveshare.ControlMode) string {
	switch m {
	case waveshare.Control0To10V:
		return "0-10v"
	case waveshare.Control2To10V:
		return "2-10v"
	case waveshare.Control0To20mA:
		return "0-20ma"
	case waveshare.Control4To20mA:
		return "4-20ma"
	case waveshare.ControlRaw:
		return "raw"
	}
	return fmt.Sprintf("0x%04x", uint16(m))
}
