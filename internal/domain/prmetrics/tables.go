package prmetrics

import "regexp"

// Active verbs expected in strong PR headlines, grouped by register.
// Matching is whole-word against the lowercased title.
var activeVerbs = []string{
	// business
	"startet",
	"eröffnet",
	"übernimmt",
	"erweitert",
	"investiert",
	"gründet",
	"expandiert",
	// innovation
	"entwickelt",
	"revolutioniert",
	"präsentiert",
	"lanciert",
	"optimiert",
	"digitalisiert",
	"automatisiert",
	// marketing
	"begeistert",
	"überzeugt",
	"gewinnt",
	"stärkt",
	"steigert",
	// achievement
	"erreicht",
	"erzielt",
	"feiert",
	"wächst",
	"verdoppelt",
	"übertrifft",
}

// Call-to-action phrases searched in the body text.
var actionVerbRe = regexp.MustCompile(`(?i)(jetzt (testen|anmelden|entdecken|sichern|herunterladen)|entdecken sie|erfahren sie|kontaktieren sie|besuchen sie|sichern sie sich|testen sie)`)

// Learn-more phrases searched in the body text.
var learnMoreRe = regexp.MustCompile(`(?i)(mehr erfahren|erfahren sie mehr|weitere informationen|mehr infos|weitere details)`)

// Numeric tokens, including decimal separators.
var numberRe = regexp.MustCompile(`\b\d+(?:[.,]\d+)*\b`)

// Concrete dates: numeric dates, written-out dates, or a bare year.
var dateRe = regexp.MustCompile(`(?i)(\b\d{1,2}\.\d{1,2}\.\d{2,4}\b|\b\d{1,2}\.\s*(januar|februar|märz|april|mai|juni|juli|august|september|oktober|november|dezember)\b|\b(19|20)\d{2}\b)`)

// Company names: a capitalized name followed by a legal form, or an
// acronym-like capitalized sequence.
var companyNameRe = regexp.MustCompile(`\p{Lu}[\p{Ll}\p{Lu}&.-]*\s+(GmbH|AG|SE|KG|Inc\.?|Corp\.?|Ltd\.?)`)
var acronymRe = regexp.MustCompile(`\b\p{Lu}{2,}\b`)
