package document

const (
	CPFLength     = 11
	CPFBaseLength = 9
)

var (
	cpfWeightsDV1 = [...]int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeightsDV2 = [...]int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsCPFValid reports whether cpf holds a valid CPF, masked or not.
// Anything that is not 11 digits after cleaning is simply invalid.
func IsCPFValid(cpf string) bool {
	cleaned := SanitizeCPF(cpf)
	if len(cleaned) != CPFLength {
		return false
	}

	// Repeated digits pass the checksum but are never issued
	if hasAllSameChars(cleaned) {
		return false
	}

	base := cleaned[:CPFBaseLength]
	provided := cleaned[CPFBaseLength:]
	return provided == cpfCheckDigits(base)
}

// SanitizeCPF drops every character that is not an ASCII digit.
func SanitizeCPF(cpf string) string {
	return onlyDigits(cpf)
}

// FormatCPF renders cpf as NNN.NNN.NNN-NN. Inputs that do not clean up
// to exactly 11 digits are returned untouched.
func FormatCPF(cpf string) string {
	cleaned := SanitizeCPF(cpf)
	if len(cleaned) != CPFLength {
		return cpf
	}
	return cleaned[0:3] + "." + cleaned[3:6] + "." + cleaned[6:9] + "-" + cleaned[9:11]
}

// CPFWeights returns copies of the weight tables used for both check digits.
func CPFWeights() (dv1, dv2 []int) {
	return append([]int(nil), cpfWeightsDV1[:]...), append([]int(nil), cpfWeightsDV2[:]...)
}

// cpfCheckDigits expects a 9 digit base.
func cpfCheckDigits(base string) string {
	digits := make([]int, 0, CPFBaseLength+1)
	for i := 0; i < len(base); i++ {
		digits = append(digits, int(base[i]-'0'))
	}

	dv1 := checkDigit(digits, cpfWeightsDV1[:])
	dv2 := checkDigit(append(digits, dv1), cpfWeightsDV2[:])
	return digitPair(dv1, dv2)
}
