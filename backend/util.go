package backend

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/icza/gox/timex"
	"github.com/wansing/chronik/util"
	"gitlab.com/golang-commonmark/markdown"
)

var markdownParser = markdown.New(markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

// renderBody translates CommonMark article content to HTML.
func renderBody(content string) template.HTML {
	return template.HTML(markdownParser.RenderToString([]byte(content)))
}

func excerpt(content string) string {
	return util.Excerpt(strings.NewReader(string(renderBody(content))), 240)
}

func FormatTs(ts int64) string {
	// ignores the user timezone
	return time.Unix(ts, 0).Format("_2.1.2006 15:04")
}

// Age says how long ago ts was, in its largest unit.
func Age(ts int64) string {
	year, month, day, hour, min, _ := timex.Diff(time.Unix(ts, 0), time.Now())
	switch {
	case year > 0:
		return plural(year, "year")
	case month > 0:
		return plural(month, "month")
	case day > 0:
		return plural(day, "day")
	case hour > 0:
		return plural(hour, "hour")
	case min > 0:
		return plural(min, "minute")
	default:
		return "just now"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("one %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
