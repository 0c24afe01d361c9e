package vocab

// vesselKeywords is checked in priority order; the specific class names
// come before the loose "handy" keyword.
var vesselKeywords = []struct {
	keyword string
	class   VesselType
}{
	{"capesize", Capesize},
	{"cape", Capesize},
	{"panamax", Panamax},
	{"ultramax", Ultramax},
	{"supramax", Supramax},
	{"handy", Handy},
}
