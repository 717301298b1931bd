package nested

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func identity(s string) string { return s }

func TestReduceNoDelimiterReturnsUnchanged(t *testing.T) {
	s := "plain text with no braces"
	assert.Equal(t, s, Reduce(s, "{{", "}}", identity))
}

func TestReduceSinglePairAppliesF(t *testing.T) {
	got := Reduce("a{{x}}b", "{{", "}}", func(content string) string {
		return "[" + content + "]"
	})
	assert.Equal(t, "a[x]b", got)
}

func TestReduceNestedReducesInnermostFirst(t *testing.T) {
	var seen []string
	Reduce("{{a{{b}}c}}", "{{", "}}", func(content string) string {
		seen = append(seen, content)
		return content
	})
	assert.Equal(t, []string{"b", "abc"}, seen)
}

func TestReduceDeletesWhenFReturnsEmpty(t *testing.T) {
	got := Reduce("before {{drop me}} after", "{{", "}}", func(string) string { return "" })
	assert.Equal(t, "before  after", got)
}

func TestReduceCapGuardsAdversarialInput(t *testing.T) {
	s := strings.Repeat("{{", 60000) + strings.Repeat("}}", 60000)
	got := Reduce(s, "{{", "}}", func(c string) string { return c })
	// Each pass removes the innermost empty pair; the cap stops Reduce
	// after 50000 passes with 10000 of the 60000 pairs still in place.
	assert.Equal(t, strings.Repeat("{{", 10000)+strings.Repeat("}}", 10000), got)
}

func TestBalancedTrue(t *testing.T) {
	assert.True(t, Balanced("{{a{{b}}c}}", "{{", "}}"))
}

func TestBalancedFalseUnmatchedOpen(t *testing.T) {
	assert.False(t, Balanced("{{a{{b}}c", "{{", "}}"))
}

func TestTopLevelSplitSkipsNested(t *testing.T) {
	parts := TopLevelSplit("name|a={{x|y}}|b=[[z|w]]", '|')
	assert.Equal(t, []string{"name", "a={{x|y}}", "b=[[z|w]]"}, parts)
}

func TestTopLevelSplitNoSeparator(t *testing.T) {
	assert.Equal(t, []string{"onlyname"}, TopLevelSplit("onlyname", '|'))
}
