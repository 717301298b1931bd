package template

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/yohasebe/wp2txt-sub000/internal/config"
	"github.com/yohasebe/wp2txt-sub000/internal/wikitext/nested"
)

// evalParserFunction dispatches a `{{#name:arg1|arg2|…}}` body. Unknown
// functions return empty, or are preserved verbatim when
// cfg.PreserveUnknown is set.
func evalParserFunction(body string, ctx Context, cfg *config.Transform) string {
	segs := nested.TopLevelSplit(body, '|')
	head := strings.TrimSpace(segs[0])
	i := strings.IndexByte(head, ':')
	var fn, firstArg string
	if i >= 0 {
		fn = strings.ToLower(strings.TrimSpace(head[:i]))
		firstArg = strings.TrimSpace(head[i+1:])
	} else {
		fn = strings.ToLower(head)
	}
	args := append([]string{firstArg}, segs[1:]...)
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
	}

	switch fn {
	case "#if":
		if args[0] != "" {
			return arg(args, 1)
		}
		return arg(args, 2)
	case "#ifeq":
		if arg(args, 0) == arg(args, 1) {
			return arg(args, 2)
		}
		return arg(args, 3)
	case "#switch":
		return evalSwitch(args)
	case "#expr":
		return evalExprString(arg(args, 0))
	case "#ifexpr":
		if truthy(evalExprString(arg(args, 0))) {
			return arg(args, 1)
		}
		return arg(args, 2)
	case "#len":
		return strconv.Itoa(len(arg(args, 0)))
	case "#pos":
		return strconv.Itoa(strings.Index(arg(args, 0), arg(args, 1)))
	case "#rpos":
		return strconv.Itoa(strings.LastIndex(arg(args, 0), arg(args, 1)))
	case "#count":
		return strconv.Itoa(strings.Count(arg(args, 0), arg(args, 1)))
	case "#sub":
		return evalSub(args)
	case "#replace":
		return strings.ReplaceAll(arg(args, 0), arg(args, 1), arg(args, 2))
	case "#explode":
		return evalExplode(args)
	case "#urlencode":
		return url.QueryEscape(arg(args, 0))
	case "#urldecode":
		s, err := url.QueryUnescape(arg(args, 0))
		if err != nil {
			return arg(args, 0)
		}
		return s
	case "#padleft":
		return pad(args, true)
	case "#padright":
		return pad(args, false)
	case "#iferror":
		if looksLikeError(arg(args, 0)) {
			return arg(args, 1)
		}
		if len(args) > 2 {
			return arg(args, 2)
		}
		return arg(args, 0)
	case "#titleparts":
		return titleparts(args)
	case "#time":
		spec := arg(args, 0)
		if len(args) > 1 {
			spec += "|" + arg(args, 1)
		}
		return formatTimeSpec(spec, ctx.ReferenceDate)
	}

	if cfg != nil && cfg.PreserveUnknown {
		return "{{" + body + "}}"
	}
	return ""
}

func arg(args []string, i int) string {
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

func evalSwitch(args []string) string {
	if len(args) == 0 {
		return ""
	}
	subject := args[0]
	var fallback string
	hasFallback := false
	for _, clause := range args[1:] {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) == 1 {
			fallback = strings.TrimSpace(parts[0])
			hasFallback = true
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == subject || key == "#default" {
			if key == subject {
				return val
			}
			fallback = val
			hasFallback = true
		}
	}
	if hasFallback {
		return fallback
	}
	return ""
}

func evalSub(args []string) string {
	s := arg(args, 0)
	start, _ := strconv.Atoi(arg(args, 1))
	if start < 0 {
		start = len(s) + start
	}
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		return ""
	}
	length := len(s) - start
	if l := arg(args, 2); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			length = n
		}
	}
	end := start + length
	if end > len(s) || length < 0 {
		end = len(s)
	}
	if end < start {
		end = start
	}
	return s[start:end]
}

func evalExplode(args []string) string {
	s := arg(args, 0)
	delim := arg(args, 1)
	idx, _ := strconv.Atoi(arg(args, 2))
	if delim == "" {
		return ""
	}
	parts := strings.Split(s, delim)
	if idx < 0 {
		idx = len(parts) + idx
	}
	if idx < 0 || idx >= len(parts) {
		return ""
	}
	return parts[idx]
}

func pad(args []string, left bool) string {
	s := arg(args, 0)
	n, _ := strconv.Atoi(arg(args, 1))
	padStr := arg(args, 2)
	if padStr == "" {
		padStr = "0"
	}
	for len(s) < n {
		if left {
			s = padStr + s
		} else {
			s = s + padStr
		}
	}
	if len(s) > n && n > 0 {
		if left {
			s = s[len(s)-n:]
		} else {
			s = s[:n]
		}
	}
	return s
}

func looksLikeError(s string) bool {
	return strings.Contains(s, "class=\"error\"") || strings.HasPrefix(strings.TrimSpace(s), "Expression error")
}

func titleparts(args []string) string {
	page := arg(args, 0)
	segs := strings.Split(page, "/")
	count := len(segs)
	if c := arg(args, 1); c != "" {
		if n, err := strconv.Atoi(c); err == nil {
			count = n
		}
	}
	offset := 0
	if o := arg(args, 2); o != "" {
		if n, err := strconv.Atoi(o); err == nil {
			offset = n
		}
	}
	start := offset
	if start < 0 {
		start = 0
	}
	end := start + count
	if end > len(segs) || count <= 0 {
		end = len(segs)
	}
	if start > end {
		start = end
	}
	return strings.Join(segs[start:end], "/")
}

func evalExprString(expr string) string {
	v, err := evalExpr(expr)
	if err != nil {
		return fmt.Sprintf("Expression error: %v", err)
	}
	return formatNumber(v)
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truthy(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "0"
}
