package checkout

import (
	"regexp"
	"strings"

	"salonbook/models"
)

// Matches a basic local@domain shape, the same check the booking form uses.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validate checks the required checkout fields and returns a field→message
// map for everything missing or malformed.
func validate(input SubmitInput) *ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(input.Email) {
		fields["email"] = "Email is invalid"
	}
	if strings.TrimSpace(input.Phone) == "" {
		fields["phone"] = "Phone number is required"
	}
	if input.Date == "" {
		fields["date"] = "Date is required"
	}
	if input.Time == "" {
		fields["time"] = "Time is required"
	}
	switch input.PaymentMethod {
	case models.PaymentMethodCard, models.PaymentMethodCash:
	default:
		fields["paymentMethod"] = "Payment method must be card or cash"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
