package domain

import "strconv"

// FormatNaira renders a kobo amount as a naira string with digit
// grouping, e.g. 1500000 -> "₦15,000". Fractional kobo is dropped,
// matching the checkout UI.
func FormatNaira(kobo int64) string {
	naira := kobo / 100
	neg := naira < 0
	if neg {
		naira = -naira
	}
	s := strconv.FormatInt(naira, 10)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-₦" + string(out)
	}
	return "₦" + string(out)
}
