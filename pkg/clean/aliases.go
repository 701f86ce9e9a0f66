package clean

// Alias tables mapping historical or abbreviated values to their current
// canonical form. Built once at load time and never mutated, so they are safe
// for concurrent readers. Every alias maps directly to the canonical value;
// no canonical value appears as a key, which keeps cleaning idempotent.

// playerNames collapses known spelling and suffix variants of player names.
var playerNames = map[string]string{
	"Gary Jennings Jr":        "Gary Jennings",
	"DJ Chark":                "D.J. Chark",
	"Cedrick Wilson Jr.":      "Cedrick Wilson",
	"Deangelo Yancey":         "DeAngelo Yancey",
	"Ardarius Stewart":        "ArDarius Stewart",
	"Calvin Johnson  HOF":     "Calvin Johnson",
	"Mike Sims-Walker":        "Mike Walker",
	"Kenneth Moore":           "Kenny Moore",
	"Devante Parker":          "DeVante Parker",
	"Brandon Lafell":          "Brandon LaFell",
	"Desean Jackson":          "DeSean Jackson",
	"Deandre Hopkins":         "DeAndre Hopkins",
	"Deandre Smelter":         "DeAndre Smelter",
	"William Fuller":          "Will Fuller",
	"Lavon Brazill":           "LaVon Brazill",
	"Devier Posey":            "DeVier Posey",
	"Demarco Sampson":         "DeMarco Sampson",
	"Deandrew Rubin":          "DeAndrew Rubin",
	"Latarence Dunbar":        "LaTarence Dunbar",
	"Jajuan Dawson":           "JaJuan Dawson",
	"Andre' Davis":            "Andre Davis",
	"Johnathan Holland":       "Jonathan Holland",
	"Johnnie Lee Higgins Jr.": "Johnnie Lee Higgins",
	"Marquis Walker":          "Marquise Walker",
	"William Franklin":        "Will Franklin",
	"Ted Ginn Jr.":            "Ted Ginn",
	"Jonathan Baldwin":        "Jon Baldwin",
	"T.J. Graham":             "Trevor Graham",
	"Odell Beckham Jr.":       "Odell Beckham",
	"Michael Pittman Jr.":     "Michael Pittman",
	"DK Metcalf":              "D.K. Metcalf",
	"JJ Arcega-Whiteside":     "J.J. Arcega-Whiteside",
	"Lynn Bowden Jr.":         "Lynn Bowden",
	"Laviska Shenault Jr.":    "Laviska Shenault",
	"Henry Ruggs III":         "Henry Ruggs",
	"KJ Hamler":               "K.J. Hamler",
	"KJ Osborn":               "K.J. Osborn",
	"Devonta Smith":           "DeVonta Smith",
	"Terrace Marshall Jr.":    "Terrace Marshall",
	"Ja'Marr Chase":           "JaMarr Chase",
}

// collegeTeams collapses college program name variants.
var collegeTeams = map[string]string{
	"Ole Miss":           "Mississippi",
	"Texas Christian":    "TCU",
	"Central Florida":    "UCF",
	"Bowling Green State": "Bowling Green",
	"West. Michigan":     "Western Michigan",
	"Pitt":               "Pittsburgh",
	"Brigham Young":      "BYU",
	"Texas-El Paso":      "UTEP",
	"East. Michigan":     "Eastern Michigan",
	"Middle Tenn. State": "Middle Tennessee State",
	"Southern Miss":      "Southern Mississippi",
	"Louisiana State":    "LSU",
}

// teamRelocations maps pre-relocation franchise codes to the current code.
// Consulted before teamAbbreviations; covers seasons when the franchise
// played in its old market under any abbreviation scheme.
var teamRelocations = map[string]string{
	"SD":  "LAC",
	"SDG": "LAC",
	"OAK": "LV",
	"STL": "LAR",
}

// teamAbbreviations maps alternate abbreviation schemes (notably the
// three-letter PFR codes) to the nflverse codes.
var teamAbbreviations = map[string]string{
	"GNB": "GB",
	"KAN": "KC",
	"LA":  "LAR",
	"LVR": "LV",
	"NWE": "NE",
	"NOR": "NO",
	"SDG": "LAC",
	"SFO": "SF",
	"TAM": "TB",
}
