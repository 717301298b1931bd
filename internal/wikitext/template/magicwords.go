package template

import (
	"fmt"
	"net/url"
	"strings"
)

// magicWord resolves the name-only magic words: page-name variants,
// namespace, and the current-date family. ok is false when name is not
// a recognised magic word, so callers fall through to the template
// name-dispatch table.
func magicWord(name string, ctx Context) (string, bool) {
	switch strings.ToUpper(name) {
	case "PAGENAME":
		return ctx.Title, true
	case "PAGENAMEE":
		return urlTitle(ctx.Title), true
	case "FULLPAGENAME":
		return fullPageName(ctx), true
	case "FULLPAGENAMEE":
		return urlTitle(fullPageName(ctx)), true
	case "BASEPAGENAME":
		return basePageName(ctx.Title), true
	case "BASEPAGENAMEE":
		return urlTitle(basePageName(ctx.Title)), true
	case "ROOTPAGENAME":
		return rootPageName(ctx.Title), true
	case "ROOTPAGENAMEE":
		return urlTitle(rootPageName(ctx.Title)), true
	case "SUBPAGENAME":
		return subPageName(ctx.Title), true
	case "SUBPAGENAMEE":
		return urlTitle(subPageName(ctx.Title)), true
	case "NAMESPACE":
		return ctx.Namespace, true
	case "TALKPAGENAME":
		return "Talk:" + ctx.Title, true
	case "CURRENTYEAR", "LOCALYEAR":
		return fmt.Sprintf("%d", ctx.ReferenceDate.Year()), true
	case "CURRENTMONTH", "LOCALMONTH":
		return fmt.Sprintf("%02d", int(ctx.ReferenceDate.Month())), true
	case "CURRENTDAY", "LOCALDAY":
		return fmt.Sprintf("%d", ctx.ReferenceDate.Day()), true
	case "CURRENTTIME", "LOCALTIME":
		return ctx.ReferenceDate.Format("15:04"), true
	case "CURRENTTIMESTAMP", "LOCALTIMESTAMP":
		return ctx.ReferenceDate.Format("20060102150405"), true
	}
	return magicStringFn(name)
}

// magicStringFn handles the `{{fn:arg}}` string-function family, which
// parses differently from name-only magic words.
func magicStringFn(name string) (string, bool) {
	i := strings.IndexByte(name, ':')
	if i < 0 {
		return "", false
	}
	fn := strings.ToLower(strings.TrimSpace(name[:i]))
	arg := strings.TrimSpace(name[i+1:])
	switch fn {
	case "lc":
		return strings.ToLower(arg), true
	case "uc":
		return strings.ToUpper(arg), true
	case "lcfirst":
		return lowerFirst(arg), true
	case "ucfirst":
		return upperFirst(arg), true
	case "urlencode":
		return url.QueryEscape(arg), true
	case "anchorencode":
		return strings.ReplaceAll(arg, " ", "_"), true
	case "int":
		return arg, true
	case "formatnum":
		return arg, true
	case "plural", "grammar", "gender":
		parts := strings.Split(arg, "|")
		if len(parts) > 1 {
			return strings.TrimSpace(parts[1]), true
		}
		return arg, true
	}
	return "", false
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func urlTitle(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return url.QueryEscape(s)
}

func fullPageName(ctx Context) string {
	if ctx.Namespace == "" {
		return ctx.Title
	}
	return ctx.Namespace + ":" + ctx.Title
}

func basePageName(title string) string {
	i := strings.LastIndex(title, "/")
	if i < 0 {
		return title
	}
	return title[:i]
}

func rootPageName(title string) string {
	i := strings.Index(title, "/")
	if i < 0 {
		return title
	}
	return title[:i]
}

func subPageName(title string) string {
	i := strings.LastIndex(title, "/")
	if i < 0 {
		return title
	}
	return title[i+1:]
}
