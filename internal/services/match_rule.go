package services

import (
	"strings"

	"closet/internal/models"
)

// MatchRule decides which garment types complement the selected item. It
// returns the type keywords candidate garments must contain. The rule is
// injected into GarmentService so it can be swapped without touching the
// endpoint or service plumbing.
type MatchRule func(selected *models.Garment) []string

var (
	topTokens      = []string{"shirt", "tee", "blouse"}
	bottomKeywords = []string{"pants", "jeans", "trousers", "skirt"}
	topKeywords    = []string{"shirt", "tee", "blouse", "sweater"}
)

// ComplementaryRule is the default one-level heuristic: a shirt-like item is
// matched with bottoms, anything else with tops.
func ComplementaryRule(selected *models.Garment) []string {
	garmentType := strings.ToLower(selected.Type)
	for _, token := range topTokens {
		if strings.Contains(garmentType, token) {
			return bottomKeywords
		}
	}
	return topKeywords
}
