package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankDate(t *testing.T) {
	t.Run("month.year shapes", func(t *testing.T) {
		assert.Equal(t, 202511, rankDate("11.2025"))
		assert.Equal(t, 202401, rankDate("01.2024"))
	})

	t.Run("strictly increasing in (year, month)", func(t *testing.T) {
		prev := 0
		for year := 2000; year <= 2003; year++ {
			for month := 1; month <= 12; month++ {
				r := rankDate(fmt.Sprintf("%02d.%d", month, year))
				assert.Greater(t, r, prev, "rank must grow at %02d.%d", month, year)
				prev = r
			}
		}
	})

	t.Run("ongoing outranks any real date", func(t *testing.T) {
		assert.Greater(t, rankDate("Ongoing"), rankDate("12.2099"))
		assert.Equal(t, rankDate("Ongoing"), rankDate("ongoing"))
		assert.Equal(t, rankDate("Ongoing"), rankDate("  ONGOING  "))
	})

	t.Run("bare year sorts at the start of that year", func(t *testing.T) {
		assert.Equal(t, 202401, rankDate("2024"))
		assert.Less(t, rankDate("2024"), rankDate("02.2024"))
	})

	t.Run("malformed ranks zero", func(t *testing.T) {
		assert.Equal(t, 0, rankDate(""))
		assert.Equal(t, 0, rankDate("soon"))
		assert.Equal(t, 0, rankDate("1850"))
		assert.Equal(t, 0, rankDate("2100"))
	})
}

func TestFeaturedOrder(t *testing.T) {
	cases := []struct {
		status   string
		order    int
		featured bool
	}{
		{"featured", 0, true},
		{"Featured", 0, true},
		{"Featured 3", 3, true},
		{"featured 12", 12, true},
		{"Public", 0, false},
		{"Login Required", 0, false},
		{"", 0, false},
		{"featured three", 0, false},
		{"featuredish", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			order, featured := featuredOrder(tc.status)
			assert.Equal(t, tc.featured, featured)
			if tc.featured {
				assert.Equal(t, tc.order, order)
			}
		})
	}
}
