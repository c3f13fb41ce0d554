package models

// Travel styles
const (
	TravelStyleBudget    = "budget"
	TravelStyleLuxury    = "luxury"
	TravelStyleAdventure = "adventure"
	TravelStyleRelaxed   = "relaxed"
)

// ValidTravelStyle reports whether style is one of the known travel styles.
func ValidTravelStyle(style string) bool {
	switch style {
	case TravelStyleBudget, TravelStyleLuxury, TravelStyleAdventure, TravelStyleRelaxed:
		return true
	}
	return false
}

// Match statuses
const (
	MatchStatusActive = "active"
)
