package document

type Kind string

const (
	KindCPF     Kind = "CPF"
	KindCNPJ    Kind = "CNPJ"
	KindUnknown Kind = "UNKNOWN"
)

// Detect guesses the document kind from its cleaned length.
// It does not validate the check digits.
func Detect(raw string) Kind {
	if cnpjForbidden.MatchString(raw) {
		return KindUnknown
	}

	cleaned := SanitizeCNPJ(raw)
	switch {
	case len(cleaned) == CPFLength && onlyDigits(cleaned) == cleaned:
		return KindCPF
	case len(cleaned) == CNPJLength:
		return KindCNPJ
	default:
		return KindUnknown
	}
}

// IsValid dispatches to the validator matching Detect.
func IsValid(raw string) bool {
	switch Detect(raw) {
	case KindCPF:
		return IsCPFValid(raw)
	case KindCNPJ:
		return IsCNPJValid(raw)
	default:
		return false
	}
}

// Sanitize returns the canonical form for the detected kind, or raw itself when unknown.
func Sanitize(raw string) string {
	switch Detect(raw) {
	case KindCPF:
		return SanitizeCPF(raw)
	case KindCNPJ:
		return SanitizeCNPJ(raw)
	default:
		return raw
	}
}

// Format masks raw according to its detected kind.
func Format(raw string) string {
	switch Detect(raw) {
	case KindCPF:
		return FormatCPF(raw)
	case KindCNPJ:
		return FormatCNPJ(raw)
	default:
		return raw
	}
}
