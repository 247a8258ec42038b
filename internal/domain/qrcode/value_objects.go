package qrcode

import (
	"fmt"
	"regexp"
	"strings"

	"preloved-market/internal/pkg/errs"
)

const (
	MaxBatchSize = 99999
	maxPrefixLen = 32
)

var (
	codePattern   = regexp.MustCompile(`^[A-Z0-9_-]+-\d{5}$`)
	prefixPattern = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

// Code is a printed label value of the form PREFIX-BATCH-NNNNN.
type Code struct {
	value string
}

func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if !codePattern.MatchString(s) {
		return Code{}, errs.WithDetailf(errs.ErrInvalidQRFormat, "%q", s)
	}
	return Code{value: s}, nil
}

// ValidFormat is the check applied to scanned input before any lookup.
func ValidFormat(s string) bool {
	return codePattern.MatchString(strings.TrimSpace(s))
}

func FormatCode(prefix string, batchNumber, sequence int) Code {
	return Code{value: fmt.Sprintf("%s-%d-%05d", prefix, batchNumber, sequence)}
}

func (c Code) String() string {
	return c.value
}

func NormalizePrefix(s string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(s))
	if p == "" || len(p) > maxPrefixLen || !prefixPattern.MatchString(p) {
		return "", errs.WithDetailf(errs.ErrValidation, "invalid qr prefix %q", s)
	}
	return p, nil
}
