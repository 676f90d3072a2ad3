package model

// StateNames maps the 2-letter institution state codes that appear in NSF
// exports to display names. Codes outside this table are treated as unknown
// and excluded from state-level aggregates.
var StateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming", "PR": "Puerto Rico",
}

// KnownState reports whether code is a state code we aggregate on.
func KnownState(code string) bool {
	_, ok := StateNames[code]
	return ok
}

// StateName returns the display name for a code, falling back to the code.
func StateName(code string) string {
	if name, ok := StateNames[code]; ok {
		return name
	}
	return code
}

// MainDirectorates are NSF's top-level divisions shown in directorate views.
// Exports also carry office codes and legacy abbreviations; those are
// excluded from directorate aggregates, matching the upstream dashboards.
var MainDirectorates = []string{"MPS", "CSE", "ENG", "GEO", "EDU", "BIO", "TIP", "SBE", "O/D"}

// MainDirectorate reports whether abbr is one of MainDirectorates.
func MainDirectorate(abbr string) bool {
	for _, d := range MainDirectorates {
		if d == abbr {
			return true
		}
	}
	return false
}
