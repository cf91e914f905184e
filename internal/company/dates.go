package company

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})`)
	dottedPattern    = regexp.MustCompile(`^(\d{1,2})\.\s*(\d{1,2})\.\s*(\d{4})$`)
	longDatePattern  = regexp.MustCompile(`^(\d{1,2})\.\s*(\p{L}+)\s+(\d{4})$`)
	czechMonthsGenit = map[string]int{
		"ledna": 1, "února": 2, "března": 3, "dubna": 4, "května": 5, "června": 6,
		"července": 7, "srpna": 8, "září": 9, "října": 10, "listopadu": 11, "prosince": 12,
	}
)

// NormalizeDate converts D.M.YYYY, "D. <month> YYYY" and (partial) ISO
// timestamps into YYYY-MM-DD. It returns nil for anything else, including
// impossible calendar dates.
func NormalizeDate(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	var y, m, d int
	switch {
	case isoDatePattern.MatchString(s):
		p := isoDatePattern.FindStringSubmatch(s)
		y, m, d = atoi(p[1]), atoi(p[2]), atoi(p[3])
	case dottedPattern.MatchString(s):
		p := dottedPattern.FindStringSubmatch(s)
		d, m, y = atoi(p[1]), atoi(p[2]), atoi(p[3])
	case longDatePattern.MatchString(s):
		p := longDatePattern.FindStringSubmatch(s)
		month, ok := czechMonthsGenit[strings.ToLower(p[2])]
		if !ok {
			return nil
		}
		d, m, y = atoi(p[1]), month, atoi(p[3])
	default:
		return nil
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return nil
	}
	out := fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	return &out
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
