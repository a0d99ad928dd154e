package view

import "github.com/couchcryptid/lake-extent-dashboard/internal/domain"

func buildInsights(b *domain.Bundle) *Insights {
	in := b.Insights
	return &Insights{
		Columns: [][]InsightSection{
			{
				{Title: "🔍 Key Findings", Tone: domain.ToneInfo, Bullet: "• ", Items: in.KeyFindings},
				{Title: "🎯 Management Recommendations", Tone: domain.ToneSuccess, Bullet: "✓ ", Items: in.ManagementRecommendations},
			},
			{
				{Title: "🌡️ Primary Causes", Tone: domain.ToneWarning, Bullet: "⚠ ", Items: in.PrimaryCauses},
				{Title: "🛰️ DE Africa Advantages", Tone: domain.ToneHighlight, Bullet: "🌟 ", Items: in.DEAfricaAdvantages},
			},
		},
	}
}
