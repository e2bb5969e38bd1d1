// waveshare/bus.go
package waveshare

// Bus is the serialized link a device talks through. Each call selects
// the slave and performs one transaction as an atomic unit; on success
// the bit and register results have exactly the requested length.
// *buslink.Link satisfies this interface.
type Bus interface {
	ReadCoils(slave uint8, addr, qty uint16) ([]bool, error)
	ReadDiscreteInputs(slave uint8, addr, qty uint16) ([]bool, error)
	ReadHoldingRegisters(slave uint8, addr, qty uint16) ([]uint16, error)
	ReadInputRegisters(slave uint8, addr, qty uint16) ([]uint16, error)
	WriteSingleCoil(slave uint8, addr, value uint16) error
	WriteSingleRegister(slave uint8, addr, value uint16) error
	WriteMultipleCoils(slave uint8, addr uint16, values []bool) error
	WriteMultipleRegisters(slave uint8, addr uint16, values []uint16) error
}
