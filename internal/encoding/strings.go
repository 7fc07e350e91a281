package encoding

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const ONE byte = 49
const ZERO byte = 48

func IsBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ONE && s[i] != ZERO {
			return false
		}
	}
	return true
}

// Validate accepts non-empty strings made of '0' and '1' only.
func Validate(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty string", ErrInvalidInput)
	}
	for i := 0; i < len(s); i++ {
		if s[i] != ONE && s[i] != ZERO {
			return fmt.Errorf("%w: character %q at index %d", ErrInvalidInput, s[i], i)
		}
	}
	return nil
}

// Flip returns a copy of bits with the bit at index inverted. Indexes
// outside bits return bits unchanged.
func Flip(bits string, index int) string {
	if index < 0 || index >= len(bits) {
		return bits
	}
	out := []byte(bits)
	if out[index] == ONE {
		out[index] = ZERO
	} else {
		out[index] = ONE
	}
	return string(out)
}

// ToBinaryBytes expands every byte of s into 8 bits, most significant first.
func ToBinaryBytes(s string) string {
	var buffer bytes.Buffer
	for i := 0; i < len(s); i++ {
		fmt.Fprintf(&buffer, "%.8b", s[i])
	}
	return buffer.String()
}

// DecodeMessage reads 8-bit groups back into text. Trailing bits that do
// not fill a group are ignored.
func DecodeMessage(received string) (string, error) {
	blockLen := 8
	message := make([]byte, len(received)/blockLen)
	for index := 0; index+blockLen <= len(received); index += blockLen {
		char, err := strconv.ParseUint(received[index:index+blockLen], 2, blockLen)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		message[index/blockLen] = byte(char)
	}
	return string(message), nil
}

// HexToBinary expands a hexadecimal string, with or without a 0x prefix,
// into 4 bits per digit. Any non-hex digit yields "".
func HexToBinary(hex string) string {
	if strings.HasPrefix(hex, "0x") || strings.HasPrefix(hex, "0X") {
		hex = hex[2:]
	}
	var buffer bytes.Buffer
	for _, c := range hex {
		nibble, err := strconv.ParseUint(string(c), 16, 4)
		if err != nil {
			return ""
		}
		fmt.Fprintf(&buffer, "%04b", nibble)
	}
	return buffer.String()
}
