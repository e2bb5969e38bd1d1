// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// BUS VALIDATION
	// ------------------------------------------------------------

	switch cfg.Bus.Transport {
	case TransportRTU:
		if cfg.Bus.Device == "" {
			return fmt.Errorf("bus: rtu transport requires a serial device")
		}
		switch cfg.Bus.Parity {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("bus: parity %q not one of N, E, O", cfg.Bus.Parity)
		}
	case TransportTCP:
		if cfg.Bus.Endpoint == "" {
			return fmt.Errorf("bus: tcp transport requires an endpoint")
		}
	default:
		return fmt.Errorf("bus: transport %q not one of rtu, tcp", cfg.Bus.Transport)
	}

	if cfg.Bus.TimeoutMs < 0 {
		return fmt.Errorf("bus: timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// DEVICE INVENTORY VALIDATION
	// ------------------------------------------------------------

	if len(cfg.Devices) == 0 {
		return fmt.Errorf("devices: at least one device required")
	}

	seen := make(map[string]struct{})

	for _, d := range cfg.Devices {
		if d.ID == "" {
			return fmt.Errorf("devices: id required")
		}
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("devices: duplicate id %q", d.ID)
		}
		seen[d.ID] = struct{}{}

		switch d.Class {
		case ClassDigital, ClassAnalogInput, ClassAnalogOutput:
		default:
			return fmt.Errorf("device %q: class %q not one of digital, analog_in, analog_out", d.ID, d.Class)
		}

		if d.UnitID < 1 || d.UnitID > 247 {
			return fmt.Errorf("device %q: unit_id %d outside 1-247", d.ID, d.UnitID)
		}
	}

	// Two devices may share a unit_id only if their classes differ;
	// same class plus same unit_id is almost certainly a copy-paste slip.
	units := make(map[string]string)
	for _, d := range cfg.Devices {
		key := fmt.Sprintf("%s|%d", d.Class, d.UnitID)
		if prev, exists := units[key]; exists {
			return fmt.Errorf("devices %q and %q: same class and unit_id %d", prev, d.ID, d.UnitID)
		}
		units[key] = d.ID
	}

	return nil
}
