package document

import (
	"errors"
	"regexp"
	"strings"
)

const (
	CNPJLength     = 14
	CNPJBaseLength = 12

	zeroCNPJ = "00000000000000"
)

var (
	ErrInvalidCNPJBase = errors.New("cannot calculate check digits: invalid CNPJ base")

	// RFB weights, digit 1 uses [1:13] and digit 2 uses [0:12] plus the last entry for digit 1
	cnpjWeights = [...]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	cnpjPattern     = regexp.MustCompile(`^[A-Z\d]{12}\d{2}$`)
	cnpjBasePattern = regexp.MustCompile(`^[A-Z\d]{12}$`)
	cnpjMaskChars   = regexp.MustCompile(`[./-]`)
	cnpjForbidden   = regexp.MustCompile(`[^A-Za-z\d./-]`)
	cnpjCanonical   = regexp.MustCompile(`^[A-Z\d]{14}$`)
)

// IsCNPJValid reports whether cnpj is a valid CNPJ, numeric or alphanumeric,
// with or without the usual mask.
func IsCNPJValid(cnpj string) bool {
	if cnpjForbidden.MatchString(cnpj) {
		return false
	}

	cleaned := SanitizeCNPJ(cnpj)
	if !cnpjPattern.MatchString(cleaned) || cleaned == zeroCNPJ {
		return false
	}

	provided := cleaned[CNPJBaseLength:]
	calculated, err := CalculateCNPJCheckDigits(cleaned[:CNPJBaseLength])
	if err != nil {
		return false
	}
	return provided == calculated
}

// CalculateCNPJCheckDigits returns the two check digits for a 12 character base.
//
// Unlike IsCNPJValid, a malformed or all-zero base is reported as
// ErrInvalidCNPJBase: callers are expected to hand in a base they already know
// is well formed.
func CalculateCNPJCheckDigits(base string) (string, error) {
	if cnpjForbidden.MatchString(base) {
		return "", ErrInvalidCNPJBase
	}

	cleaned := SanitizeCNPJ(base)
	if !cnpjBasePattern.MatchString(cleaned) || cleaned == zeroCNPJ[:CNPJBaseLength] {
		return "", ErrInvalidCNPJBase
	}

	var sumDV1, sumDV2 int
	for i := 0; i < CNPJBaseLength; i++ {
		value := cnpjCharValue(cleaned[i])
		sumDV1 += value * cnpjWeights[i+1]
		sumDV2 += value * cnpjWeights[i]
	}

	dv1 := modulo11(sumDV1)
	sumDV2 += dv1 * cnpjWeights[CNPJBaseLength]
	dv2 := modulo11(sumDV2)

	return digitPair(dv1, dv2), nil
}

// SanitizeCNPJ strips the mask characters (. / -) and upper-cases the rest.
func SanitizeCNPJ(cnpj string) string {
	return strings.ToUpper(cnpjMaskChars.ReplaceAllString(cnpj, ""))
}

// FormatCNPJ renders cnpj as NN.NNN.NNN/NNNN-NN. Alphanumeric bases keep the
// same positions. Anything that does not clean up to 14 alphanumeric
// characters comes back untouched.
func FormatCNPJ(cnpj string) string {
	cleaned := SanitizeCNPJ(cnpj)
	if !cnpjCanonical.MatchString(cleaned) {
		return cnpj
	}
	return cleaned[0:2] + "." + cleaned[2:5] + "." + cleaned[5:8] + "/" + cleaned[8:12] + "-" + cleaned[12:14]
}

// CNPJWeights returns a copy of the 13 entry weight table.
func CNPJWeights() []int {
	return append([]int(nil), cnpjWeights[:]...)
}

// cnpjCharValue maps '0'-'9' to 0-9 and 'A'-'Z' to 17-42 (ASCII offset from '0').
func cnpjCharValue(c byte) int {
	return int(c) - '0'
}
