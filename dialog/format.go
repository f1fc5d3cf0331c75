package dialog

import "strconv"

// FormatPrice renders a rupee amount with Indian digit grouping, so
// 5000000 becomes "₹50,00,000".
func FormatPrice(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)

	var grouped []byte
	// Last group of three, then groups of two.
	for i, c := range []byte(digits) {
		remaining := len(digits) - i
		if i > 0 && (remaining == 3 || (remaining > 3 && remaining%2 == 1)) {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}

	out := "₹" + string(grouped)
	if negative {
		out = "-" + out
	}
	return out
}
