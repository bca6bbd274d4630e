package document

// checkDigit applies the modulo 11 rule shared by CPF and CNPJ:
// remainders 0 and 1 give 0, anything else gives 11 - remainder.
func checkDigit(values, weights []int) int {
	sum := 0
	for i, v := range values {
		sum += v * weights[i]
	}
	return modulo11(sum)
}

func modulo11(sum int) int {
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// digitPair keeps the leading zero, 0 and 5 render as "05".
func digitPair(dv1, dv2 int) string {
	return string([]byte{byte('0' + dv1), byte('0' + dv2)})
}

func hasAllSameChars(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	return string(out)
}
