package domain

import (
	"strconv"
	"strings"
)

// Amount is a monetary value in whole shillings. It accepts JSON numbers and
// numeric strings, keeping the leading digits and dropping whatever trails
// them; input with no leading digits coerces to zero instead of failing,
// matching the API's lenient input policy.
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	*a = Amount(parseLeadingInt(s))
	return nil
}

// parseLeadingInt reads an optional sign and the leading run of digits.
// "12abc" is 12, "250.75" is 250, "abc" is 0.
func parseLeadingInt(s string) int64 {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}
	n, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (a Amount) Int64() int64 { return int64(a) }
