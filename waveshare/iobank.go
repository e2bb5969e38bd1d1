// waveshare/iobank.go
package waveshare

// IOBank is the on/off state of all eight digital channels of one
// module; element i is channel i.
type IOBank [NumChannels]bool

// IOBankFromByte unpacks one bank byte, bit i to channel i.
func IOBankFromByte(b uint8) IOBank {
	var bank IOBank
	for i := range bank {
		bank[i] = b&(1<<uint(i)) != 0
	}
	return bank
}

// IOBankFromBits builds a bank from a slice read off the link. Extra
// elements are ignored; missing ones stay false.
func IOBankFromBits(bits []bool) IOBank {
	var bank IOBank
	copy(bank[:], bits)
	return bank
}

// Byte packs the bank into its register form, channel i to bit i.
// IOBankFromByte(b).Byte() == b for every byte value.
func (k IOBank) Byte() uint8 {
	var out uint8
	for i, v := range k {
		if v {
			out |= 1 << uint(i)
		}
	}
	return out
}

// Actions converts the bank to coil commands, one per channel.
func (k IOBank) Actions() [NumChannels]Action {
	var out [NumChannels]Action
	for i, v := range k {
		out[i] = ActionFromBool(v)
	}
	return out
}
