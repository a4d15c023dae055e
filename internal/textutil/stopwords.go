package textutil

// Stopwords are excluded from tokenization and keyword candidates.
var Stopwords = map[string]bool{
	"and": true, "or": true, "the": true, "a": true, "an": true,
	"of": true, "to": true, "in": true, "for": true, "with": true,
	"on": true, "by": true, "at": true, "is": true, "are": true,
	"as": true, "be": true, "this": true, "that": true, "these": true,
	"those": true, "you": true, "we": true, "our": true, "your": true,
	"will": true, "have": true, "has": true, "from": true, "about": true,
}
