package deploy

import (
	"regexp"

	"github.com/parthshah1/dropwizard/config"
)

var placeholder = regexp.MustCompile(`\$\{([A-Za-z0-9_]+)\}`)

// Render replaces ${key} placeholders with the record's values verbatim.
// Unset keys render as "".
func Render(tmpl string, rec config.Record) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		return rec.String(key)
	})
}

// RenderArgs renders every argument of a template.
func RenderArgs(args []string, rec config.Record) []string {
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = Render(arg, rec)
	}
	return rendered
}
