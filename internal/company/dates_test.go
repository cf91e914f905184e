package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{name: "dotted short", in: "29.1.2014", want: String("2014-01-29")},
		{name: "dotted spaced", in: "1. 2. 2015", want: String("2015-02-01")},
		{name: "iso timestamp", in: "2014-01-29T00:00:00", want: String("2014-01-29")},
		{name: "iso date", in: "2014-01-29", want: String("2014-01-29")},
		{name: "iso with offset", in: "2014-1-9+01:00", want: String("2014-01-09")},
		{name: "czech month", in: "1. ledna 2015", want: String("2015-01-01")},
		{name: "czech month upper", in: "12. Prosince 2001", want: String("2001-12-12")},
		{name: "unknown month", in: "1. foo 2015", want: nil},
		{name: "impossible day", in: "31.2.2014", want: nil},
		{name: "garbage", in: "yesterday", want: nil},
		{name: "empty", in: "  ", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}
