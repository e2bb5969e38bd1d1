// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Bus.TimeoutMs == 0 {
		cfg.Bus.TimeoutMs = 500
	}

	if cfg.Bus.Transport != TransportRTU {
		return
	}

	// ------------------------------------------------------------
	// SERIAL DEFAULTS
	// ------------------------------------------------------------

	if cfg.Bus.BaudRate == 0 {
		cfg.Bus.BaudRate = 9600
	}
	if cfg.Bus.DataBits == 0 {
		cfg.Bus.DataBits = 8
	}
	if cfg.Bus.Parity == "" {
		cfg.Bus.Parity = "N"
	}
	if cfg.Bus.StopBits == 0 {
		// Serial-line Modbus mandates 2 stop bits when parity is off.
		if cfg.Bus.Parity == "N" {
			cfg.Bus.StopBits = 2
		} else {
			cfg.Bus.StopBits = 1
		}
	}
}
