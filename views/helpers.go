package views

import "strings"

var jsReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"</", `<\/`,
)

// jsQuote renders s as a double-quoted JS string literal safe to inline
// in a <script> block.
func jsQuote(s string) string {
	return `"` + jsReplacer.Replace(s) + `"`
}
