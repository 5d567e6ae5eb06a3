package types

import "regexp"

// MinAmount is the smallest chargeable amount in XAF accepted by the service.
const MinAmount = 100

// phoneRx matches Cameroonian mobile numbers in local format: a 6 followed
// by eight digits, no country code.
var phoneRx = regexp.MustCompile(`^6[0-9]{8}$`)

// transIDRx matches the alphanumeric transaction identifiers issued by the
// service.
var transIDRx = regexp.MustCompile(`^[a-zA-Z0-9]{8,10}$`)

var userIDRx = regexp.MustCompile(`^[a-zA-Z0-9-_]{1,100}$`)

// ValidateAmount checks the amount of a charge or payout. Amounts are whole
// XAF; the service rejects anything under MinAmount.
func ValidateAmount(amount int) error {
	if amount == 0 {
		return NewValidationError("amount required")
	}
	if amount < MinAmount {
		return NewValidationError("amount cannot be less than 100 XAF")
	}
	return nil
}

// ValidatePhone checks a payer or payee mobile number.
func ValidatePhone(phone string) error {
	if phone == "" {
		return NewValidationError("phone number required")
	}
	if !phoneRx.MatchString(phone) {
		return NewValidationError("invalid phone number")
	}
	return nil
}

// ValidateTransID checks a transaction identifier before it is placed in a
// request path.
func ValidateTransID(transID string) error {
	if transID == "" {
		return NewValidationError("transaction id required")
	}
	if !transIDRx.MatchString(transID) {
		return NewValidationError("invalid transaction id")
	}
	return nil
}

// ValidateUserID checks a merchant-assigned user identifier.
func ValidateUserID(userID string) error {
	if userID == "" {
		return NewValidationError("user id required")
	}
	if !userIDRx.MatchString(userID) {
		return NewValidationError("invalid user id")
	}
	return nil
}

// ValidatePayoutTarget checks the destination of a payout. Balance transfers
// to a Fapshi account are addressed by email; mobile money payouts are
// addressed by phone number.
func ValidatePayoutTarget(medium, phone, email string) error {
	if medium == MediumFapshi {
		if email == "" {
			return NewValidationError("email required for fapshi payouts")
		}
		return nil
	}
	return ValidatePhone(phone)
}

// ValidateSearchLimit checks the page-size cap of a transaction search. Zero
// means unset and is left for the service to default.
func ValidateSearchLimit(limit int) error {
	if limit == 0 {
		return nil
	}
	if limit < 1 || limit > 100 {
		return NewValidationError("limit must be between 1 and 100")
	}
	return nil
}
