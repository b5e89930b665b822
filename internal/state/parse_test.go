package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"100", 100},
		{" 50.55 ", 50.55},
		{".5", 0.5},
		{"12.5", 12.5},
		{"-5", 0},
		{"--5", 0},
		{"-", 0},
		{"1.2.3", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e400", 0},
		{"1e2", 100},
		{"0x1p4", 0},
		{"0X10", 0},
		{"1_000", 0},
		{"1p2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.text))
		})
	}
}

func TestParsePeople(t *testing.T) {
	assert.Equal(t, 1, ParsePeople(""))
	assert.Equal(t, 1, ParsePeople("0"))
	assert.Equal(t, 1, ParsePeople("-3"))
	assert.Equal(t, 1, ParsePeople("two"))
	assert.Equal(t, 4, ParsePeople("4"))
	assert.Equal(t, 250, ParsePeople(" 250 "))
}
