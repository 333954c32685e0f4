package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// QuotationPrefix starts every quotation reference, "BG" for báo giá
const QuotationPrefix = "BG"

// QuotationReference renders sequence n as BG-000001
func QuotationReference(n int) string {
	return fmt.Sprintf("%s-%06d", QuotationPrefix, n)
}

// ParseQuotationReference returns the sequence number of a BG-000001 reference
func ParseQuotationReference(ref string) (int, bool) {
	digits, ok := strings.CutPrefix(ref, QuotationPrefix+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
