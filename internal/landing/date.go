package landing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ivoa/docrepo-ads/internal/document"
)

var monthNames = []string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

var dateRe = regexp.MustCompile(
	`(\d{1,2})\s*(` + strings.Join(monthNames, "|") + `)\s*(\d\d\d\d)`)

// ParseSubheadDate extracts the first date from a landing page tagline,
// which spells dates as "11 April 2012".
func ParseSubheadDate(s string) (document.Date, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return document.Date{}, fmt.Errorf("no date visible in %q", s)
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	month := 0
	for i, name := range monthNames {
		if name == m[2] {
			month = i + 1
			break
		}
	}

	return document.Date{Year: year, Month: month, Day: day}, nil
}
