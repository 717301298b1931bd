package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func posParams(values ...string) Params {
	return Params{Positional: values}
}

func TestDispatchIPAReturnsFirstPositionalWithoutConfig(t *testing.T) {
	out := dispatch("ipa", posParams("/fu:/"), nil)
	assert.Equal(t, "/fu:/", out)
}

func TestDispatchFlagTemplateIsSuppressed(t *testing.T) {
	out := dispatch("flagicon", posParams("Japan"), nil)
	assert.Equal(t, "", out)
}

func TestDispatchFlagLikeAllCapsIsSuppressed(t *testing.T) {
	out := dispatch("USA", posParams(), nil)
	assert.Equal(t, "", out)
}

func TestDispatchRubyTextFormatsReading(t *testing.T) {
	out := dispatch("ruby", posParams("漢字", "かんじ"), nil)
	assert.Equal(t, "漢字（かんじ）", out)
}

func TestDispatchInterwikiLinkReturnsFirstPositional(t *testing.T) {
	out := dispatch("ill", posParams("Example", "de", "Beispiel"), nil)
	assert.Equal(t, "Example", out)
}

func TestDispatchCirca(t *testing.T) {
	out := dispatch("circa", posParams("1990"), nil)
	assert.Equal(t, "c. 1990", out)
}

func TestDispatchNbspReturnsSpace(t *testing.T) {
	out := dispatch("nbsp", posParams(), nil)
	assert.Equal(t, " ", out)
}

func TestDispatchDefaultHeuristicFallsBackToNamedValue(t *testing.T) {
	p := Params{Named: map[string]string{"x": "val"}, raw: []string{"x=val"}}
	out := dispatch("some-unknown-template", p, nil)
	assert.Equal(t, "val", out)
}

func TestNihongoWithOnlyKanji(t *testing.T) {
	out := nihongo(posParams("Tokyo", "東京"))
	assert.Equal(t, "Tokyo (東京)", out)
}

func TestNihongoPlainTextOnly(t *testing.T) {
	out := nihongo(posParams("Tokyo"))
	assert.Equal(t, "Tokyo", out)
}

func TestFormatCitation(t *testing.T) {
	p := Params{Named: map[string]string{
		"author": "Smith, J.",
		"title":  "On Go",
		"year":   "2020",
	}}
	out := formatCitation(p)
	assert.Equal(t, `Smith, J.. "On Go." 2020.`, out)
}

func TestLangVisibleTextPrefersSecondPositional(t *testing.T) {
	out := langVisibleText("lang", posParams("ja", "日本語"))
	assert.Equal(t, "日本語", out)
}

func TestLangVisibleTextWithNameUsesThirdPositional(t *testing.T) {
	out := langVisibleText("langwithname", posParams("ja", "日本語", "Japanese"))
	assert.Equal(t, "Japanese", out)
}
