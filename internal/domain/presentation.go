package domain

// Tone is the visual treatment of a banner or list item.
type Tone string

const (
	ToneInfo      Tone = "info"
	ToneSuccess   Tone = "success"
	ToneWarning   Tone = "warning"
	ToneCritical  Tone = "critical"
	ToneHighlight Tone = "highlight"
)

// Advisory is a fixed banner shown under "Recent Alerts".
type Advisory struct {
	Tone Tone   `yaml:"tone"`
	Text string `yaml:"text"`
}

// StaticFigure is a labeled value that is not derived from the loaded data.
type StaticFigure struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Note  string `yaml:"note,omitempty"`
}

// Presentation holds the operator-maintained literals shown next to the
// data-driven widgets. None of these values are computed from the bundle.
type Presentation struct {
	DataSource       string         `yaml:"data_source"`
	SeasonalYear     int            `yaml:"seasonal_year"`
	Advisories       []Advisory     `yaml:"advisories"`
	TrendSummary     []StaticFigure `yaml:"trend_summary"`
	SeasonHighlights []StaticFigure `yaml:"season_highlights"`
}

// DefaultPresentation returns the built-in literals.
func DefaultPresentation() Presentation {
	return Presentation{
		DataSource:   "Digital Earth Africa WOfS",
		SeasonalYear: 2024,
		Advisories: []Advisory{
			{Tone: ToneInfo, Text: "Dry season water levels within normal range"},
			{Tone: ToneWarning, Text: "Rainy season onset delayed by 10 days"},
		},
		TrendSummary: []StaticFigure{
			{Label: "5-Year Change", Value: "+2.2%"},
			{Label: "Average Annual Change", Value: "+0.4%"},
			{Label: "Stability Index", Value: "High"},
		},
		SeasonHighlights: []StaticFigure{
			{Label: "Peak Season", Value: "September", Note: "Main rainy season"},
			{Label: "Lowest Season", Value: "June", Note: "Pre-rainy season"},
		},
	}
}

// Merge returns p with every non-zero field of override applied.
func (p Presentation) Merge(override Presentation) Presentation {
	if override.DataSource != "" {
		p.DataSource = override.DataSource
	}
	if override.SeasonalYear != 0 {
		p.SeasonalYear = override.SeasonalYear
	}
	if override.Advisories != nil {
		p.Advisories = override.Advisories
	}
	if override.TrendSummary != nil {
		p.TrendSummary = override.TrendSummary
	}
	if override.SeasonHighlights != nil {
		p.SeasonHighlights = override.SeasonHighlights
	}
	return p
}
