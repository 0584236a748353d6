package stradus

import (
	"fmt"
	"strconv"
)

// EncodeQuery builds the request line for a query exchange:
// the query sigil, the mnemonic and the request terminator.
func EncodeQuery(spec CommandSpec) (string, error) {
	if !spec.CanQuery() {
		return "", fmt.Errorf("%s: %w", spec.Name, ErrUnsupportedDirection)
	}
	return QuerySigil + spec.Mnemonic + RequestTerminator, nil
}

// EncodeSet builds the request line for a set exchange. The value is
// validated against the command's value kind before anything is put
// on the wire; action commands (KindNone) take no value and encode as
// the bare mnemonic.
func EncodeSet(spec CommandSpec, value string) (string, error) {
	if !spec.CanSet() {
		return "", fmt.Errorf("%s: %w", spec.Name, ErrUnsupportedDirection)
	}
	if spec.Kind == KindNone {
		if value != "" {
			return "", fmt.Errorf("%s takes no value, got %q: %w", spec.Name, value, ErrInvalidValue)
		}
		return spec.Mnemonic + RequestTerminator, nil
	}
	if err := validateValue(spec, value); err != nil {
		return "", err
	}
	return spec.Mnemonic + SetSeparator + value + RequestTerminator, nil
}

// FormatNumber formats a numeric set value the way the device expects:
// plain decimal with a point separator, never locale-dependent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validateValue(spec CommandSpec, value string) error {
	if value == "" {
		return fmt.Errorf("%s requires a value: %w", spec.Name, ErrInvalidValue)
	}
	switch spec.Kind {
	case KindBool:
		if value != BoolOn && value != BoolOff {
			return fmt.Errorf("%s expects %q or %q, got %q: %w",
				spec.Name, BoolOff, BoolOn, value, ErrInvalidValue)
		}
	case KindNumeric:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%s expects a decimal number, got %q: %w",
				spec.Name, value, ErrInvalidValue)
		}
	case KindText:
		for i := 0; i < len(value); i++ {
			if value[i] < 0x20 || value[i] > 0x7E {
				return fmt.Errorf("%s expects printable ASCII, got %q: %w",
					spec.Name, value, ErrInvalidValue)
			}
		}
	}
	return nil
}
