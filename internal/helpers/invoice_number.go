package helpers

import (
	"errors"
	"fmt"
	"strconv"
)

// InvoiceNumberWidth is the minimum number of digits of an invoice number.
const InvoiceNumberWidth = 5

var ErrInvalidInvoiceNumber = errors.New("invalid invoice number")

// FormatInvoiceNumber zero-pads n to InvoiceNumberWidth digits: 1 -> "00001".
// Numbers past 99999 keep growing in width.
func FormatInvoiceNumber(n int64) string {
	if n < 0 {
		panic(fmt.Sprintf("invoice number must not be negative: %d", n))
	}
	return fmt.Sprintf("%0*d", InvoiceNumberWidth, n)
}

// ParseInvoiceNumber reverses FormatInvoiceNumber. Only ASCII digits are accepted.
func ParseInvoiceNumber(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidInvoiceNumber)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidInvoiceNumber, s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidInvoiceNumber, s, err)
	}
	return n, nil
}
