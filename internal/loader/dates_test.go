package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{name: "iso date", value: "2024-03-11", want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "iso date time", value: "2024-03-11 14:30:15", want: time.Date(2024, 3, 11, 14, 30, 15, 0, time.UTC)},
		{name: "iso with T", value: "2024-03-11T14:30:15", want: time.Date(2024, 3, 11, 14, 30, 15, 0, time.UTC)},
		{name: "surrounding space", value: "  2024-03-11  ", want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "slashed", value: "2024/03/11", want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "us format", value: "03/11/2024", want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "us short format", value: "3/11/2024", want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "us with clock", value: "3/11/2024 09:05", want: time.Date(2024, 3, 11, 9, 5, 0, 0, time.UTC)},
		{name: "us with meridiem", value: "3/11/2024 2:15 PM", want: time.Date(2024, 3, 11, 14, 15, 0, 0, time.UTC)},
		{name: "month name", value: "Mar 11, 2024", want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "long month name", value: "March 11, 2024", want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "day first month name", value: "11 March 2024", want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "year and month", value: "2024-03", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "year only", value: "2024", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "excel serial", value: "45362", want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.value, time.UTC)
			require.NotNil(t, got, "value %q should parse", tt.value)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, *got)
		})
	}
}

func TestParseDate_RFC3339KeepsOffset(t *testing.T) {
	got := ParseDate("2024-03-11T10:00:00+03:00", time.UTC)

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 11, 7, 0, 0, 0, time.UTC), got.UTC())
	assert.Equal(t, 10, got.Hour())
}

func TestParseDate_Absent(t *testing.T) {
	for _, value := range []string{"", "   ", "nan", "NaT", "yesterday", "2024-13-45", "31/02/2024", "0", "-5", "99999999"} {
		t.Run(value, func(t *testing.T) {
			assert.Nil(t, ParseDate(value, time.UTC))
		})
	}
}

func TestParseDate_NilLocationUsesLocal(t *testing.T) {
	got := ParseDate("2024-03-11", nil)

	require.NotNil(t, got)
	assert.Equal(t, time.Local, got.Location())
}
