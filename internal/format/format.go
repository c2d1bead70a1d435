package format

import (
	"fmt"
	"strings"
	"time"
)

// FmtEGP renders a whole-pound EGP amount, e.g. FmtEGP(1500) => "1,500 EGP".
// Zero renders as "0 EGP"; use FmtTotal for the storefront's FREE treatment.
func FmtEGP(amount int64) string {
	return thousandSep(amount) + " EGP"
}

// FmtTotal renders a cart total, substituting "FREE" for zero.
func FmtTotal(amount int64) string {
	if amount == 0 {
		return "FREE"
	}
	return FmtEGP(amount)
}

// FmtSAR renders a converted SAR amount with one decimal, e.g. "10.0 SAR".
func FmtSAR(amount float64) string {
	return fmt.Sprintf("%.1f SAR", amount)
}

// FmtRate renders the applied conversion rate, e.g. "1 SAR ≈ 13.50 EGP".
func FmtRate(rate float64) string {
	return fmt.Sprintf("1 SAR ≈ %.2f EGP", rate)
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}

// FmtDate formats a timestamp in the site's short form.
func FmtDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
