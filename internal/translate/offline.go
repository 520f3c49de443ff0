package translate

import "strings"

// OfflineProvider produces a translation without any network access.
// It is the degradation target for the translation client and can be
// swapped for a real offline model without touching the orchestration.
type OfflineProvider interface {
	// Translate returns a best-effort offline translation. It must
	// always return a non-empty string for non-empty input.
	Translate(text, targetLanguage string) string
}

// PhraseEntry is one row of the static offline phrase table.
type PhraseEntry struct {
	Text        string
	Language    string
	Translation string
}

// PhraseTable is the fixed-lookup offline provider. Entries are kept
// in a slice because the partial-match pass is defined by table
// order: the first hit wins.
type PhraseTable struct {
	entries []PhraseEntry
}

// NewPhraseTable creates a phrase table over the given entries. With
// nil entries the built-in default table is used.
func NewPhraseTable(entries []PhraseEntry) *PhraseTable {
	if entries == nil {
		entries = defaultPhrases
	}
	return &PhraseTable{entries: entries}
}

// Translate looks up text for the target language. Lookup order:
// exact match, then a case-insensitive substring match in either
// direction (first hit in table order), then a tagged placeholder.
//
// The substring pass is order-dependent and can produce surprising
// matches for short inputs; that behavior is part of the contract.
func (pt *PhraseTable) Translate(text, targetLanguage string) string {
	for _, e := range pt.entries {
		if e.Language == targetLanguage && e.Text == text {
			return e.Translation
		}
	}

	lower := strings.ToLower(text)
	for _, e := range pt.entries {
		if e.Language != targetLanguage {
			continue
		}
		key := strings.ToLower(e.Text)
		if strings.Contains(key, lower) || strings.Contains(lower, key) {
			return e.Translation
		}
	}

	return "[" + strings.ToUpper(targetLanguage) + "] " + text
}

// defaultPhrases covers a handful of common phrases per language so
// the application remains usable without any credential.
var defaultPhrases = []PhraseEntry{
	{"Hello", "es", "Hola"},
	{"Good morning", "es", "Buenos días"},
	{"Thank you", "es", "Gracias"},
	{"Goodbye", "es", "Adiós"},
	{"How are you?", "es", "¿Cómo estás?"},
	{"Please", "es", "Por favor"},
	{"Yes", "es", "Sí"},
	{"No", "es", "No"},
	{"Excuse me", "es", "Disculpe"},
	{"I love you", "es", "Te quiero"},

	{"Hello", "fr", "Bonjour"},
	{"Good morning", "fr", "Bonjour"},
	{"Thank you", "fr", "Merci"},
	{"Goodbye", "fr", "Au revoir"},
	{"How are you?", "fr", "Comment allez-vous ?"},
	{"Please", "fr", "S'il vous plaît"},
	{"Yes", "fr", "Oui"},
	{"No", "fr", "Non"},

	{"Hello", "de", "Hallo"},
	{"Good morning", "de", "Guten Morgen"},
	{"Thank you", "de", "Danke"},
	{"Goodbye", "de", "Auf Wiedersehen"},
	{"How are you?", "de", "Wie geht es dir?"},
	{"Please", "de", "Bitte"},
	{"Yes", "de", "Ja"},
	{"No", "de", "Nein"},

	{"Hello", "it", "Ciao"},
	{"Good morning", "it", "Buongiorno"},
	{"Thank you", "it", "Grazie"},
	{"Goodbye", "it", "Arrivederci"},
	{"Please", "it", "Per favore"},

	{"Hello", "pt", "Olá"},
	{"Good morning", "pt", "Bom dia"},
	{"Thank you", "pt", "Obrigado"},
	{"Goodbye", "pt", "Adeus"},

	{"Hello", "ja", "こんにちは"},
	{"Thank you", "ja", "ありがとう"},
	{"Goodbye", "ja", "さようなら"},

	{"Hello", "ru", "Привет"},
	{"Thank you", "ru", "Спасибо"},

	{"Hello", "zh", "你好"},
	{"Thank you", "zh", "谢谢"},
}
