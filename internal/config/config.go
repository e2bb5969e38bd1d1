// internal/config/config.go
package config

type Config struct {
	Bus     BusConfig      `yaml:"bus"`
	Devices []DeviceConfig `yaml:"devices"`
}

// ---- BUS ----

type BusConfig struct {
	Transport string `yaml:"transport"` // rtu | tcp

	// rtu
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"` // N | E | O
	StopBits int    `yaml:"stop_bits"`

	// tcp
	Endpoint string `yaml:"endpoint"`

	TimeoutMs int `yaml:"timeout_ms"`
}

// ---- DEVICES ----

type DeviceConfig struct {
	ID     string `yaml:"id"`
	Class  string `yaml:"class"` // digital | analog_in | analog_out
	UnitID uint8  `yaml:"unit_id"`
}

// Transport kinds.
const (
	TransportRTU = "rtu"
	TransportTCP = "tcp"
)

// Device classes.
const (
	ClassDigital      = "digital"
	ClassAnalogInput  = "analog_in"
	ClassAnalogOutput = "analog_out"
)
