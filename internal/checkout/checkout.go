// Package checkout implements the order submission flow: the draft the buyer
// fills in, its validation rules, and assembly of the staff notification sent
// to the review webhook. There is no payment processing here — a submission
// is a message for manual human review, not a transaction.
package checkout

import (
	"strings"

	"auroracraft.gg/aurora-web/internal/rates"
	"auroracraft.gg/aurora-web/internal/webhook"
)

// Method identifies a manual transfer channel the buyer can pay through.
type Method string

// Supported payment methods.
const (
	MethodSTCPay       Method = "stc_pay"
	MethodInstapay     Method = "instapay"
	MethodVodafoneCash Method = "vodafone_cash"
	MethodTelda        Method = "telda"
)

// Methods lists the selectable payment methods in display order.
func Methods() []Method {
	return []Method{MethodSTCPay, MethodInstapay, MethodVodafoneCash, MethodTelda}
}

// ParseMethod maps a form value to a known method. Unknown values fall back
// to STC Pay, the storefront default.
func ParseMethod(s string) Method {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodInstapay:
		return MethodInstapay
	case MethodVodafoneCash:
		return MethodVodafoneCash
	case MethodTelda:
		return MethodTelda
	default:
		return MethodSTCPay
	}
}

// Label is the short display name shown on the method selector.
func (m Method) Label() string {
	switch m {
	case MethodSTCPay:
		return "STC Pay"
	case MethodInstapay:
		return "Instapay"
	case MethodVodafoneCash:
		return "V. Cash"
	case MethodTelda:
		return "Telda"
	default:
		return strings.ToUpper(strings.ReplaceAll(string(m), "_", " "))
	}
}

// ReviewLabel is the method name used in the staff notification, e.g. "STC PAY".
func (m Method) ReviewLabel() string {
	return strings.ToUpper(strings.ReplaceAll(string(m), "_", " "))
}

// TargetLabel names the kind of destination the buyer transfers to.
func (m Method) TargetLabel() string {
	switch m {
	case MethodSTCPay:
		return "STC Pay Number"
	case MethodInstapay:
		return "Instapay Address"
	case MethodTelda:
		return "Telda Handle"
	default:
		return "Wallet Number"
	}
}

// TargetValue is the destination account for the method.
func (m Method) TargetValue() string {
	switch m {
	case MethodSTCPay:
		return "055 368 0057"
	case MethodInstapay:
		return "ghost_czrk@instapay"
	case MethodTelda:
		return "@czrk5320"
	default:
		return "010 2549 2313"
	}
}

// ConvertsToSAR reports whether amounts for this method are quoted in SAR.
// Only STC Pay converts; every other method transfers the raw EGP amount.
func (m Method) ConvertsToSAR() bool { return m == MethodSTCPay }

// Draft is the in-progress checkout form. It exists only for the lifetime of
// the checkout page and is discarded on navigation or successful submission.
type Draft struct {
	IGN     string
	Discord string
	Method  Method
	Proof   *webhook.Attachment
	Quote   rates.Quote
}

// ValidationError reports the first failed submit-time check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate runs the submit-time checks in order, short-circuiting on the
// first failure. Carts with a zero total take the free-claim path: no payment
// method or proof image is required.
func (d *Draft) Validate(total int64) *ValidationError {
	if strings.TrimSpace(d.IGN) == "" {
		return &ValidationError{Field: "ign", Message: "Please enter your Minecraft username."}
	}
	if strings.TrimSpace(d.Discord) == "" {
		return &ValidationError{Field: "discord", Message: "Please enter your Discord username."}
	}
	if total > 0 && (d.Proof == nil || len(d.Proof.Data) == 0) {
		return &ValidationError{Field: "proof", Message: "Please upload a screenshot of your transaction proof."}
	}
	return nil
}
