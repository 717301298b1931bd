// Package config provides configuration management for wp2txt-sub000.
//
// Process-level knobs (worker count, logging) are loaded from
// environment variables with sensible defaults. The semantic
// configuration surface — content toggles, marker set, sections,
// output format, extract mode — is richer than a handful of env vars,
// so it is loaded from a YAML file instead (see Transform,
// LoadTransformConfig below). The CLI flag parser that assembles a run
// from user input is an external collaborator; this package only
// parses and validates.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text or json
}

// ProcessConfig holds process-level settings loaded from the environment.
type ProcessConfig struct {
	Workers int
	Logging LoggingConfig
}

// LoadProcessConfig loads process-level configuration from environment
// variables with defaults.
func LoadProcessConfig() *ProcessConfig {
	return &ProcessConfig{
		Workers: getEnvInt("WP2TXT_WORKERS", 1),
		Logging: LoggingConfig{
			Level:  getEnv("WP2TXT_LOG_LEVEL", "INFO"),
			Format: getEnv("WP2TXT_LOG_FORMAT", "text"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// MarkerKind is the closed set of markable block constructs.
type MarkerKind string

const (
	MarkerMath       MarkerKind = "math"
	MarkerCode       MarkerKind = "code"
	MarkerCodeBlock  MarkerKind = "code_block"
	MarkerChem       MarkerKind = "chem"
	MarkerTable      MarkerKind = "table"
	MarkerScore      MarkerKind = "score"
	MarkerTimeline   MarkerKind = "timeline"
	MarkerGraph      MarkerKind = "graph"
	MarkerIPA        MarkerKind = "ipa"
	MarkerInfobox    MarkerKind = "infobox"
	MarkerNavbox     MarkerKind = "navbox"
	MarkerGallery    MarkerKind = "gallery"
	MarkerSidebar    MarkerKind = "sidebar"
	MarkerMapframe   MarkerKind = "mapframe"
	MarkerImagemap   MarkerKind = "imagemap"
	MarkerReferences MarkerKind = "references"
)

// AllMarkerKinds lists the closed MarkerKind set in a stable order.
var AllMarkerKinds = []MarkerKind{
	MarkerMath, MarkerCode, MarkerCodeBlock, MarkerChem, MarkerTable,
	MarkerScore, MarkerTimeline, MarkerGraph, MarkerIPA, MarkerInfobox,
	MarkerNavbox, MarkerGallery, MarkerSidebar, MarkerMapframe,
	MarkerImagemap, MarkerReferences,
}

// OutputFormat is either plain text or JSON Lines.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSONL OutputFormat = "jsonl"
)

// ExtractMode selects a narrower extraction behaviour than "full text".
type ExtractMode string

const (
	ExtractFull         ExtractMode = ""
	ExtractCategoryOnly ExtractMode = "category_only"
	ExtractSummaryOnly  ExtractMode = "summary_only"
	ExtractMetadataOnly ExtractMode = "metadata_only"
)

// Transform is the semantic configuration surface consumed by the
// wikitext transformer and output writer.
type Transform struct {
	// Content toggles.
	KeepTitles       bool `yaml:"keep_titles"`
	KeepHeadings     bool `yaml:"keep_headings"`
	KeepLists        bool `yaml:"keep_lists"`
	KeepTables       bool `yaml:"keep_tables"`
	KeepPreformatted bool `yaml:"keep_preformatted"`
	KeepRedirects    bool `yaml:"keep_redirects"`
	KeepListMarkers  bool `yaml:"keep_list_markers"`
	StripEmphasis    bool `yaml:"strip_emphasis"`
	KeepCategories   bool `yaml:"keep_categories"`

	// Marker set: constructs in this set are marked-and-preserved as
	// "«« KIND »»"; everything else recognised as a MarkerKind source
	// construct is deleted instead.
	Markers map[MarkerKind]bool `yaml:"markers"`

	// Sections.
	Sections       []string          `yaml:"sections"`
	SectionAliases map[string]string `yaml:"section_aliases"`
	MinSectionLen  int               `yaml:"min_section_length"`
	SkipEmpty      bool              `yaml:"skip_empty"`

	// Output.
	Format        OutputFormat `yaml:"format"`
	RotateSizeMB  int          `yaml:"rotate_size_mb"`

	// Extract mode.
	Mode              ExtractMode `yaml:"mode"`
	ExtractCitations  bool        `yaml:"extract_citations"`
	ExpandTemplates   bool        `yaml:"expand_templates"`
	PreserveUnknown   bool        `yaml:"preserve_unknown"`
}

// Default returns the conventional default Transform configuration:
// headings/lists/tables/categories kept, all markers enabled, single
// output file, text format.
func Default() *Transform {
	markers := make(map[MarkerKind]bool, len(AllMarkerKinds))
	for _, k := range AllMarkerKinds {
		markers[k] = true
	}
	return &Transform{
		KeepTitles:       true,
		KeepHeadings:     true,
		KeepLists:        true,
		KeepTables:       true,
		KeepPreformatted: true,
		KeepRedirects:    false,
		KeepListMarkers:  false,
		StripEmphasis:    true,
		KeepCategories:   true,
		Markers:          markers,
		MinSectionLen:    0,
		Format:           FormatText,
		RotateSizeMB:     0,
		Mode:             ExtractFull,
	}
}

// MarkerEnabled reports whether kind is in the preserve-as-marker set.
func (t *Transform) MarkerEnabled(kind MarkerKind) bool {
	if t == nil || t.Markers == nil {
		return false
	}
	return t.Markers[kind]
}

// LoadTransformConfig reads and validates a Transform from a YAML file,
// filling any field the file omits from Default().
func LoadTransformConfig(path string) (*Transform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Markers == nil {
		cfg.Markers = Default().Markers
	}
	return cfg, nil
}
