// Package weathercode maps WMO weather codes reported by Open-Meteo to a
// condition label and an icon identifier.
package weathercode

type Classification struct {
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

const (
	UnknownCondition = "Unknown"
	UnknownIcon      = "unknown"
)

// Classify never fails; codes outside the table map to the unknown condition.
func Classify(code int) Classification {
	switch code {
	case 0:
		return Classification{Condition: "Clear sky", Icon: "sunny"}
	case 1, 2, 3:
		return Classification{Condition: "Partly cloudy", Icon: "partlycloudy"}
	case 45, 48:
		return Classification{Condition: "Foggy", Icon: "fog"}
	case 51, 53, 55:
		return Classification{Condition: "Drizzle", Icon: "drizzle"}
	case 61, 63, 65:
		return Classification{Condition: "Rain", Icon: "rain"}
	case 71, 73, 75:
		return Classification{Condition: "Snow", Icon: "snow"}
	case 95:
		return Classification{Condition: "Thunderstorm", Icon: "thunder"}
	default:
		return Classification{Condition: UnknownCondition, Icon: UnknownIcon}
	}
}
