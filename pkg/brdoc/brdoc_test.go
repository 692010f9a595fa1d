package brdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPFValidate(t *testing.T) {
	cpf := CPF{}

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"known valid plain", "11144477735", true},
		{"known valid formatted", "111.444.777-35", true},
		{"all digits identical", "11111111111", false},
		{"all zeros", "00000000000", false},
		{"too short", "1114447773", false},
		{"too long", "111444777350", false},
		{"empty", "", false},
		{"wrong first check digit", "11144477745", false},
		{"wrong second check digit", "11144477736", false},
		{"letters only", "abcdefghijk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, cpf.Validate(tt.value))
		})
	}
}

func TestCPFValidateDigitSensitivity(t *testing.T) {
	// Altering any single digit of a valid CPF must invalidate it.
	cpf := CPF{}
	const valid = "11144477735"

	for i := 0; i < len(valid); i++ {
		mutated := []byte(valid)
		mutated[i] = byte('0' + (int(valid[i]-'0')+1)%10)
		assert.False(t, cpf.Validate(string(mutated)),
			"mutation at position %d (%s) should be invalid", i, mutated)
	}
}

func TestCPFFormat(t *testing.T) {
	cpf := CPF{}

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"full mask", "11144477735", "111.444.777-35"},
		{"already formatted", "111.444.777-35", "111.444.777-35"},
		{"partial stays bare", "111444", "111444"},
		{"over cap passes through", "111444777351", "111444777351"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cpf.Format(tt.value))
		})
	}
}

func TestPhoneValidate(t *testing.T) {
	phone := Phone{}

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"mobile 11 digits", "11987654321", true},
		{"landline 10 digits", "1133334444", true},
		{"formatted mobile", "(11) 98765-4321", true},
		{"9 digits", "987654321", false},
		{"12 digits", "119876543210", false},
		{"all identical", "11111111111", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, phone.Validate(tt.value))
		})
	}
}

func TestPhoneFormat(t *testing.T) {
	phone := Phone{}

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"mobile", "11987654321", "(11) 98765-4321"},
		{"landline", "1133334444", "(11) 3333-4444"},
		{"partial stays bare", "11987", "11987"},
		{"over cap passes through", "119876543210", "119876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, phone.Format(tt.value))
		})
	}
}
