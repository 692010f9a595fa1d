package brdoc

// CPF validates and formats 11-digit CPF numbers.
type CPF struct{}

// Validate checks the two CPF verification digits. The first is computed over
// digits 1-9 with weights 10..2, the second over digits 1-10 with weights
// 11..2; in both cases the check digit is (sum*10) mod 11, mapped to 0 when
// the result is 10 or 11.
func (CPF) Validate(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 11 || allSameDigit(digits) {
		return false
	}

	d := make([]int, 11)
	for i := 0; i < 11; i++ {
		d[i] = int(digits[i] - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += d[i] * (10 - i)
	}
	if checkDigit(sum) != d[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += d[i] * (11 - i)
	}
	return checkDigit(sum) == d[10]
}

func checkDigit(sum int) int {
	r := (sum * 10) % 11
	if r == 10 || r == 11 {
		return 0
	}
	return r
}

// Format renders the 000.000.000-00 mask once all 11 digits are present.
// Partial input is left as bare digits and anything beyond 11 digits passes
// through unformatted; truncation is deliberately not enforced.
func (CPF) Format(value string) string {
	digits := digitsOnly(value)
	if len(digits) > 11 {
		return value
	}
	if len(digits) < 11 {
		return digits
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}
