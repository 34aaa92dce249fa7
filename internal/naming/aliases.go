package naming

// Alias reference tables mapping known spelling variants to the canonical
// club names used by the downstream dataset. Keys are normalized on load, so
// they may be written in any spelling that survives Normalize.

// League names as used in requests
const (
	LeaguePremierLeague = "Premier League"
	LeagueBundesliga    = "Bundesliga"
	LeagueLaLiga        = "La Liga"
	LeagueSerieA        = "Serie A"
	LeaguePrimeiraLiga  = "Primeira Liga"
	LeagueLigue1        = "Ligue 1"
)

var leagueSportKeys = map[string]string{
	LeaguePremierLeague: "soccer_epl",
	LeagueBundesliga:    "soccer_germany_bundesliga",
	LeagueLaLiga:        "soccer_spain_la_liga",
	LeagueSerieA:        "soccer_italy_serie_a",
	LeaguePrimeiraLiga:  "soccer_portugal_primeira_liga",
	LeagueLigue1:        "soccer_france_ligue_one",
}

var premierLeagueAliases = map[string]string{
	"arsenal":                  "Arsenal",
	"gunners":                  "Arsenal",
	"aston villa":              "Aston Villa",
	"villa":                    "Aston Villa",
	"bournemouth":              "Bournemouth",
	"afc bournemouth":          "Bournemouth",
	"cherries":                 "Bournemouth",
	"brentford":                "Brentford",
	"bees":                     "Brentford",
	"brighton":                 "Brighton",
	"brighton and hove albion": "Brighton",
	"seagulls":                 "Brighton",
	"chelsea":                  "Chelsea",
	"crystal palace":           "Crystal Palace",
	"palace":                   "Crystal Palace",
	"eagles":                   "Crystal Palace",
	"everton":                  "Everton",
	"toffees":                  "Everton",
	"fulham":                   "Fulham",
	"cottagers":                "Fulham",
	"ipswich":                  "Ipswich",
	"ipswich town":             "Ipswich",
	"tractor boys":             "Ipswich",
	"leicester":                "Leicester",
	"leicester city":           "Leicester",
	"foxes":                    "Leicester",
	"liverpool":                "Liverpool",
	"man city":                 "Man City",
	"manchester city":          "Man City",
	"citizens":                 "Man City",
	"man utd":                  "Man United",
	"manchester united":        "Man United",
	"red devils":               "Man United",
	"newcastle":                "Newcastle",
	"newcastle united":         "Newcastle",
	"magpies":                  "Newcastle",
	"nottm forest":             "Nott'm Forest",
	"nottingham forest":        "Nott'm Forest",
	"forest":                   "Nott'm Forest",
	"southampton":              "Southampton",
	"saints":                   "Southampton",
	"tottenham":                "Tottenham",
	"tottenham hotspur":        "Tottenham",
	"spurs":                    "Tottenham",
	"west ham":                 "West Ham",
	"west ham united":          "West Ham",
	"hammers":                  "West Ham",
	"wolves":                   "Wolves",
	"wolverhampton wanderers":  "Wolves",
}

var serieAAliases = map[string]string{
	"atalanta":         "Atalanta",
	"atalanta bc":      "Atalanta",
	"atalanta bergamo": "Atalanta",
	"bergamo":          "Atalanta",
	"roma":             "Roma",
	"as roma":          "Roma",
	"giallorossi":      "Roma",
	"inter":            "Inter",
	"inter milan":      "Inter",
	"internazionale":   "Inter",
	"fc inter":         "Inter",
	"nerazzurri":       "Inter",
	"milan":            "Milan",
	"ac milan":         "Milan",
	"rossoneri":        "Milan",
	"juventus":         "Juventus",
	"juve":             "Juventus",
	"juventus fc":      "Juventus",
	"bianconeri":       "Juventus",
	"napoli":           "Napoli",
	"ssc napoli":       "Napoli",
	"naples":           "Napoli",
	"lazio":            "Lazio",
	"ss lazio":         "Lazio",
	"fiorentina":       "Fiorentina",
	"acf fiorentina":   "Fiorentina",
	"viola":            "Fiorentina",
	"bologna":          "Bologna",
	"bologna fc":       "Bologna",
	"torino":           "Torino",
	"torino fc":        "Torino",
	"toro":             "Torino",
	"granata":          "Torino",
	"cagliari":         "Cagliari",
	"cagliari calcio":  "Cagliari",
	"empoli":           "Empoli",
	"empoli fc":        "Empoli",
	"genoa":            "Genoa",
	"genoa fc":         "Genoa",
	"grifone":          "Genoa",
	"lecce":            "Lecce",
	"us lecce":         "Lecce",
	"monza":            "Monza",
	"ac monza":         "Monza",
	"udinese":          "Udinese",
	"udinese calcio":   "Udinese",
	"venezia":          "Venezia",
	"venezia fc":       "Venezia",
	"verona":           "Verona",
	"hellas verona":    "Verona",
	"hellas":           "Verona",
	"como":             "Como",
	"como 1907":        "Como",
	"parma":            "Parma",
	"parma fc":         "Parma",
}

var laLigaAliases = map[string]string{
	"alaves":           "Alaves",
	"deportivo alaves": "Alaves",
	"almeria":          "Almeria",
	"ud almeria":       "Almeria",
	"athletic":         "Ath Bilbao",
	"athletic bilbao":  "Ath Bilbao",
	"athletic club":    "Ath Bilbao",
	"atletico":         "Ath Madrid",
	"atletico madrid":  "Ath Madrid",
	"atleti":           "Ath Madrid",
	"barcelona":        "Barcelona",
	"fc barcelona":     "Barcelona",
	"barca":            "Barcelona",
	"celta":            "Celta",
	"celta vigo":       "Celta",
	"espanyol":         "Espanol",
	"rcd espanyol":     "Espanol",
	"espanol":          "Espanol",
	"getafe":           "Getafe",
	"getafe cf":        "Getafe",
	"girona":           "Girona",
	"girona fc":        "Girona",
	"las palmas":       "Las Palmas",
	"ud las palmas":    "Las Palmas",
	"leganes":          "Leganes",
	"cd leganes":       "Leganes",
	"mallorca":         "Mallorca",
	"rca mallorca":     "Mallorca",
	"osasuna":          "Osasuna",
	"ca osasuna":       "Osasuna",
	"rayo":             "Vallecano",
	"rayo vallecano":   "Vallecano",
	"vallecano":        "Vallecano",
	"betis":            "Betis",
	"real betis":       "Betis",
	"madrid":           "Real Madrid",
	"real madrid":      "Real Madrid",
	"sociedad":         "Sociedad",
	"real sociedad":    "Sociedad",
	"sevilla":          "Sevilla",
	"sevilla fc":       "Sevilla",
	"valencia":         "Valencia",
	"valencia cf":      "Valencia",
	"villarreal":       "Villarreal",
	"villarreal cf":    "Villarreal",
}

var bundesligaAliases = map[string]string{
	"augsburg":             "Augsburg",
	"fc augsburg":          "Augsburg",
	"bayern":               "Bayern Munich",
	"bayern munich":        "Bayern Munich",
	"fc bayern":            "Bayern Munich",
	"fc bayern munchen":    "Bayern Munich",
	"bochum":               "Bochum",
	"vfl bochum":           "Bochum",
	"dortmund":             "Dortmund",
	"borussia dortmund":    "Dortmund",
	"bvb":                  "Dortmund",
	"gladbach":             "M'gladbach",
	"mgladbach":            "M'gladbach",
	"borussia mgladbach":   "M'gladbach",
	"monchengladbach":      "M'gladbach",
	"frankfurt":            "Ein Frankfurt",
	"ein frankfurt":        "Ein Frankfurt",
	"eintracht frankfurt":  "Ein Frankfurt",
	"eintracht":            "Ein Frankfurt",
	"freiburg":             "Freiburg",
	"sc freiburg":          "Freiburg",
	"heidenheim":           "Heidenheim",
	"fc heidenheim":        "Heidenheim",
	"hoffenheim":           "Hoffenheim",
	"tsg hoffenheim":       "Hoffenheim",
	"kiel":                 "Holstein Kiel",
	"holstein kiel":        "Holstein Kiel",
	"mainz":                "Mainz",
	"mainz 05":             "Mainz",
	"leipzig":              "RB Leipzig",
	"rb leipzig":           "RB Leipzig",
	"st pauli":             "St Pauli",
	"fc st pauli":          "St Pauli",
	"stuttgart":            "Stuttgart",
	"vfb stuttgart":        "Stuttgart",
	"union berlin":         "Union Berlin",
	"fc union berlin":      "Union Berlin",
	"werder":               "Werder Bremen",
	"werder bremen":        "Werder Bremen",
	"wolfsburg":            "Wolfsburg",
	"vfl wolfsburg":        "Wolfsburg",
	"leverkusen":           "Leverkusen",
	"bayer leverkusen":     "Leverkusen",
	"bayer 04":             "Leverkusen",
	"bayer 04 leverkusen":  "Leverkusen",
}

var ligue1Aliases = map[string]string{
	"angers":               "Angers",
	"sco angers":           "Angers",
	"auxerre":              "Auxerre",
	"aj auxerre":           "Auxerre",
	"brest":                "Brest",
	"stade brestois":       "Brest",
	"le havre":             "Le Havre",
	"havre":                "Le Havre",
	"lens":                 "Lens",
	"rc lens":              "Lens",
	"lille":                "Lille",
	"losc":                 "Lille",
	"losc lille":           "Lille",
	"lyon":                 "Lyon",
	"olympique lyon":       "Lyon",
	"olympique lyonnais":   "Lyon",
	"marseille":            "Marseille",
	"olympique marseille":  "Marseille",
	"olympique de marseille": "Marseille",
	"monaco":               "Monaco",
	"as monaco":            "Monaco",
	"montpellier":          "Montpellier",
	"montpellier hsc":      "Montpellier",
	"nantes":               "Nantes",
	"fc nantes":            "Nantes",
	"nice":                 "Nice",
	"ogc nice":             "Nice",
	"paris":                "Paris SG",
	"psg":                  "Paris SG",
	"paris saint germain":  "Paris SG",
	"paris sg":             "Paris SG",
	"reims":                "Reims",
	"stade de reims":       "Reims",
	"rennes":               "Rennes",
	"stade rennais":        "Rennes",
	"st etienne":           "St Etienne",
	"saint etienne":        "St Etienne",
	"as saint etienne":     "St Etienne",
	"strasbourg":           "Strasbourg",
	"racing strasbourg":    "Strasbourg",
	"rc strasbourg":        "Strasbourg",
	"toulouse":             "Toulouse",
	"toulouse fc":          "Toulouse",
}

var primeiraLigaAliases = map[string]string{
	"arouca":          "Arouca",
	"fc arouca":       "Arouca",
	"avs":             "AVS",
	"cd aves":         "AVS",
	"benfica":         "Benfica",
	"sl benfica":      "Benfica",
	"boavista":        "Boavista",
	"boavista fc":     "Boavista",
	"braga":           "Sp Braga",
	"sc braga":        "Sp Braga",
	"sp braga":        "Sp Braga",
	"casa pia":        "Casa Pia",
	"casa pia ac":     "Casa Pia",
	"estoril":         "Estoril",
	"estoril praia":   "Estoril",
	"estrela":         "Estrela",
	"estrela amadora": "Estrela",
	"famalicao":       "Famalicao",
	"fc famalicao":    "Famalicao",
	"farense":         "Farense",
	"sc farense":      "Farense",
	"gil vicente":     "Gil Vicente",
	"moreirense":      "Moreirense",
	"nacional":        "Nacional",
	"cd nacional":     "Nacional",
	"porto":           "Porto",
	"fc porto":        "Porto",
	"rio ave":         "Rio Ave",
	"rio ave fc":      "Rio Ave",
	"santa clara":     "Santa Clara",
	"cd santa clara":  "Santa Clara",
	"sporting cp":     "Sp Lisbon",
	"sp lisbon":       "Sp Lisbon",
	"guimaraes":       "Guimaraes",
}

// leagueOverrides are checked before the general tables. These cover provider
// spellings that generic normalization either mismatches or leaves colliding
// with another club in the same league ("sporting" alone is Sporting CP, not
// Sporting Braga; the Guimaraes spellings drift between sources).
var leagueOverrides = map[string]map[string]string{
	LeaguePrimeiraLiga: {
		"sporting":           "Sp Lisbon",
		"sporting lisbon":    "Sp Lisbon",
		"sporting braga":     "Sp Braga",
		"vitoria sc":         "Guimaraes",
		"vitória sc":         "Guimaraes",
		"vitoria guimaraes":  "Guimaraes",
		"vitoria ganmarares": "Guimaraes",
	},
	LeagueLaLiga: {
		// "real" prefixed names collapse onto several clubs after
		// normalization; keep the ambiguous short forms pinned
		"real": "Real Madrid",
	},
}

var leagueAliases = map[string]map[string]string{
	LeaguePremierLeague: premierLeagueAliases,
	LeagueSerieA:        serieAAliases,
	LeagueLaLiga:        laLigaAliases,
	LeagueBundesliga:    bundesligaAliases,
	LeagueLigue1:        ligue1Aliases,
	LeaguePrimeiraLiga:  primeiraLigaAliases,
}
