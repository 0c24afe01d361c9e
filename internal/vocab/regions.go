package vocab

// regionAliases is evaluated top to bottom: an exact-match pass over the
// whole table, then a containment pass in declared order. Ordering is
// load-bearing for the containment pass, so compound aliases ("west coast
// india") must appear before the shorter aliases nested inside them
// ("india"). Keep this a slice; a map would make resolution of ambiguous
// substrings platform-dependent.
var regionAliases = []struct {
	alias string
	code  RegionCode
}{
	// Americas
	{"us gulf", "US GULF"},
	{"u.s. gulf", "US GULF"},
	{"usg", "US GULF"},
	{"us east coast", "US EC"},
	{"usec", "US EC"},
	{"nopac", "NOPAC"},
	{"north pacific", "NOPAC"},
	{"east coast south america", "E.S.AMERICA"},
	{"ec south america", "E.S.AMERICA"},
	{"ecsa", "E.S.AMERICA"},
	{"santos", "E.S.AMERICA"},
	{"recalada", "E.S.AMERICA"},
	{"west coast south america", "W.S.AMERICA"},
	{"wc south america", "W.S.AMERICA"},
	{"wcsa", "W.S.AMERICA"},
	{"tubarao", "BRAZIL"},
	{"brazil", "BRAZIL"},
	{"caribbean", "CARIBS"},
	{"caribs", "CARIBS"},
	{"mexico", "MEXICO"},

	// Europe / Atlantic
	{"continent", "N.EUROPE"},
	{"north europe", "N.EUROPE"},
	{"n europe", "N.EUROPE"},
	{"rotterdam", "N.EUROPE"},
	{"amsterdam", "N.EUROPE"},
	{"antwerp", "N.EUROPE"},
	{"ara", "N.EUROPE"},
	{"skaw", "N.EUROPE"},
	{"baltic", "BALTIC"},
	{"mediterranean", "MED"},
	{"canakkale", "MED"},
	{"passero", "MED"},
	{"med", "MED"},
	{"black sea", "BLACK SEA"},
	{"bsea", "BLACK SEA"},

	// Africa / Middle East
	{"west africa", "W.AFRICA"},
	{"wafr", "W.AFRICA"},
	{"richards bay", "S.AFRICA"},
	{"south africa", "S.AFRICA"},
	{"safr", "S.AFRICA"},
	{"east africa", "E.AFRICA"},
	{"north africa", "N.AFRICA"},
	{"red sea", "RED SEA"},
	{"persian gulf", "ARAB GULF"},
	{"arabian gulf", "ARAB GULF"},
	{"middle east gulf", "ARAB GULF"},
	{"meg", "ARAB GULF"},

	// Indian subcontinent
	{"west coast india", "W.C.INDIA"},
	{"wc india", "W.C.INDIA"},
	{"wci", "W.C.INDIA"},
	{"east coast india", "E.C.INDIA"},
	{"ec india", "E.C.INDIA"},
	{"eci", "E.C.INDIA"},
	{"india", "INDIA"},
	{"pakistan", "PAKISTAN"},
	{"chittagong", "BANGLADESH"},
	{"bangladesh", "BANGLADESH"},

	// Asia Pacific
	{"southeast asia", "SE ASIA"},
	{"se asia", "SE ASIA"},
	{"singapore", "SE ASIA"},
	{"indonesia", "INDONESIA"},
	{"malaysia", "MALAYSIA"},
	{"philippines", "PHILIPPINES"},
	{"vietnam", "VIETNAM"},
	{"thailand", "THAILAND"},
	{"north china", "CHINA"},
	{"south china", "CHINA"},
	{"china", "CHINA"},
	{"cjk", "CHINA"},
	{"japan", "JAPAN"},
	{"south korea", "KOREA"},
	{"korea", "KOREA"},
	{"taiwan", "TAIWAN"},
	{"west australia", "AUSTRALIA"},
	{"australia", "AUSTRALIA"},
	{"new zealand", "NEW ZEALAND"},
}
