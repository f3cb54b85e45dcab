package service

import (
	"strconv"
	"strings"
)

// ongoingRank sorts ongoing work above any real date.
const ongoingRank = 999999

// rankDate maps a free-text date to a sortable integer. Recognized
// shapes: "Ongoing" (any case), "MM.YYYY", and a bare year in
// [1900,2100). Anything else ranks as zero; this is a deliberately lossy
// total order and ties stay unresolved beyond this key.
func rankDate(date string) int {
	s := strings.TrimSpace(date)
	if s == "" {
		return 0
	}

	if strings.EqualFold(s, "ongoing") {
		return ongoingRank
	}

	// "11.2025" (month.year); unparsable components read as zero
	if before, after, ok := strings.Cut(s, "."); ok {
		month, _ := strconv.Atoi(before)
		year, _ := strconv.Atoi(after)
		return year*100 + month
	}

	// "2024" (year only) sorts at the start of that year
	if year, err := strconv.Atoi(s); err == nil && year >= 1900 && year < 2100 {
		return year*100 + 1
	}

	return 0
}

// featuredOrder extracts the manual ordering override from a status:
// "featured" ranks 0, "featured N" ranks N, everything else is not
// featured at all.
func featuredOrder(status string) (int, bool) {
	fields := strings.Fields(strings.ToLower(status))

	switch len(fields) {
	case 1:
		if fields[0] == "featured" {
			return 0, true
		}
	case 2:
		if fields[0] == "featured" && isDigits(fields[1]) {
			n, err := strconv.Atoi(fields[1])
			if err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
