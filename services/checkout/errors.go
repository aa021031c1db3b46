package checkout

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field-level messages for a rejected form. Nothing
// is persisted and no payment call is made when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid checkout form: " + strings.Join(keys, ", ")
}

// PaymentError signals that order verification failed. The cart is retained
// so the customer can retry.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Reason)
}
