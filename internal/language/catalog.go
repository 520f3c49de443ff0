package language

import "strings"

// Language describes one entry of the static language catalog.
type Language struct {
	Code string // ISO 639-1 code, e.g. "es"
	Name string // English display name
	Flag string // flag emoji shown next to the name
}

// Catalog is the fixed set of languages the application supports.
// It is never mutated at runtime.
var Catalog = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "de", Name: "German", Flag: "🇩🇪"},
	{Code: "it", Name: "Italian", Flag: "🇮🇹"},
	{Code: "pt", Name: "Portuguese", Flag: "🇵🇹"},
	{Code: "ru", Name: "Russian", Flag: "🇷🇺"},
	{Code: "ja", Name: "Japanese", Flag: "🇯🇵"},
	{Code: "ko", Name: "Korean", Flag: "🇰🇷"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	{Code: "ar", Name: "Arabic", Flag: "🇸🇦"},
	{Code: "hi", Name: "Hindi", Flag: "🇮🇳"},
	{Code: "nl", Name: "Dutch", Flag: "🇳🇱"},
	{Code: "pl", Name: "Polish", Flag: "🇵🇱"},
	{Code: "tr", Name: "Turkish", Flag: "🇹🇷"},
	{Code: "sv", Name: "Swedish", Flag: "🇸🇪"},
	{Code: "da", Name: "Danish", Flag: "🇩🇰"},
	{Code: "fi", Name: "Finnish", Flag: "🇫🇮"},
	{Code: "no", Name: "Norwegian", Flag: "🇳🇴"},
	{Code: "cs", Name: "Czech", Flag: "🇨🇿"},
	{Code: "el", Name: "Greek", Flag: "🇬🇷"},
	{Code: "he", Name: "Hebrew", Flag: "🇮🇱"},
	{Code: "th", Name: "Thai", Flag: "🇹🇭"},
	{Code: "vi", Name: "Vietnamese", Flag: "🇻🇳"},
}

// ByCode looks up a catalog entry by its language code.
func ByCode(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range Catalog {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// DisplayName returns the English name for a language code, or the
// upper-cased code itself when the code is not in the catalog.
func DisplayName(code string) string {
	if l, ok := ByCode(code); ok {
		return l.Name
	}
	return strings.ToUpper(code)
}
