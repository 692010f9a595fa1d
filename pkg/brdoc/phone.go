package brdoc

// Phone validates and formats Brazilian phone numbers: two-digit area code
// plus an 8-digit landline or 9-digit mobile number.
type Phone struct{}

// Validate accepts 10 or 11 digits that are not all identical.
func (Phone) Validate(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 10 && len(digits) != 11 {
		return false
	}
	return !allSameDigit(digits)
}

// Format renders (00) 0000-0000 or (00) 00000-0000 once enough digits are
// present. Partial input stays as bare digits; input beyond 11 digits passes
// through unformatted.
func (Phone) Format(value string) string {
	digits := digitsOnly(value)
	switch len(digits) {
	case 10:
		return "(" + digits[0:2] + ") " + digits[2:6] + "-" + digits[6:10]
	case 11:
		return "(" + digits[0:2] + ") " + digits[2:7] + "-" + digits[7:11]
	default:
		if len(digits) > 11 {
			return value
		}
		return digits
	}
}
