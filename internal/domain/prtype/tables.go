package prtype

// Classification tables. Matching runs against lowercased, tag-stripped
// content plus title; entries are lowercase words or phrases.

var productKeywords = []string{
	"produkt",
	"neue version",
	"launch",
	"markteinführung",
	"veröffentlicht",
	"release",
	"verfügbar ab",
	"neuheit",
	"lösung",
}

var financialKeywords = []string{
	"umsatz",
	"quartal",
	"geschäftsjahr",
	"bilanz",
	"gewinn",
	"jahresergebnis",
	"prognose",
	"dividende",
	"finanzergebnis",
	"aktionäre",
}

var personalKeywords = []string{
	"geschäftsführer",
	"geschäftsführerin",
	"vorstand",
	"ernennung",
	"ernannt",
	"berufen",
	"nachfolge",
	"verstärkt das team",
	"übernimmt die leitung",
	"neuer ceo",
	"neue ceo",
}

var researchKeywords = []string{
	"studie",
	"untersuchung",
	"forschung",
	"analyse",
	"umfrage",
	"wissenschaftlich",
	"ergebnisse zeigen",
	"erhebung",
	"befragten",
}

var crisisKeywords = []string{
	"rückruf",
	"stellungnahme",
	"vorfall",
	"entschuldigung",
	"richtigstellung",
	"dementi",
	"sicherheitslücke",
	"stellt klar",
	"bedauert",
}

var eventKeywords = []string{
	"veranstaltung",
	"messe",
	"konferenz",
	"webinar",
	"jubiläum",
	"einladung",
	"findet statt",
	"türen öffnen",
	"save the date",
}

// Title tokens that mark an academic or executive title in a headline.
var executiveTitleTokens = []string{
	"dr.",
	"prof.",
	"ceo",
	"cfo",
	"cto",
	"coo",
	"geschäftsführer",
	"vorstand",
	"direktor",
	"direktorin",
}

// Clarifying verbs expected in crisis headlines.
var clarifyingVerbs = []string{
	"erklärt",
	"stellt klar",
	"informiert",
}
