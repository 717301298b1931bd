package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yohasebe/wp2txt-sub000/internal/config"
)

func TestApplyMarkersPreservesEnabledKind(t *testing.T) {
	cfg := config.Default()
	got := ApplyMarkers("before <math>x^2</math> after", cfg)
	assert.Contains(t, got, "«« MATH »»")
	assert.NotContains(t, got, "x^2")
}

func TestApplyMarkersDeletesDisabledKind(t *testing.T) {
	cfg := config.Default()
	cfg.Markers[config.MarkerMath] = false
	got := ApplyMarkers("before <math>x^2</math> after", cfg)
	assert.NotContains(t, got, "«« MATH »»")
	assert.NotContains(t, got, "x^2")
}

func TestApplyMarkersWikiTable(t *testing.T) {
	cfg := config.Default()
	got := ApplyMarkers("{|\n|a||b\n|}", cfg)
	assert.Contains(t, got, "«« TABLE »»")
}

func TestApplyMarkersSelfClosingReferences(t *testing.T) {
	cfg := config.Default()
	got := ApplyMarkers("Text<references/>", cfg)
	assert.Contains(t, got, "«« REFERENCES »»")
}

func TestApplyMarkersTemplateNameInfobox(t *testing.T) {
	cfg := config.Default()
	got := ApplyMarkers("{{Infobox person|name=X}}", cfg)
	assert.Contains(t, got, "«« INFOBOX »»")
}

func TestApplyMarkersLeavesOrdinaryTemplateAlone(t *testing.T) {
	cfg := config.Default()
	got := ApplyMarkers("{{cite web|url=x}}", cfg)
	assert.Contains(t, got, "{{cite web|url=x}}")
}

func TestTemplateNameLowercasesAndTrims(t *testing.T) {
	assert.Equal(t, "infobox person", templateName(" Infobox Person |name=X"))
}

func TestTemplateMarkerKindMatchesIPAVariants(t *testing.T) {
	_, ok := templateMarkerKind("IPAc-en")
	assert.True(t, ok)
}
