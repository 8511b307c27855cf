package employment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestDurationMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    string
		months int
	}{
		{"endpoint difference", "2022-01", "2022-06", 5},
		{"same month", "2022-03", "2022-03", 0},
		{"across years", "2021-11", "2022-02", 3},
		{"open end resolves to now", "2025-01", "", 5},
		{"present keyword", "2025-04", "Present", 2},
		{"unparseable start", "sometime", "2022-06", 0},
		{"end before start", "2022-06", "2022-01", 0},
		{"month name layout", "Jan 2023", "Mar 2023", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.months, durationMonths(tt.start, tt.end, testNow))
		})
	}
}

func TestSpanMonths(t *testing.T) {
	months := spanMonths("2022-11", "2023-02", testNow)
	assert.Equal(t, []string{"2022-11", "2022-12", "2023-01", "2023-02"}, months)

	assert.Nil(t, spanMonths("", "2023-02", testNow))
	assert.Nil(t, spanMonths("unknown", "", testNow))
}
