package investlab

import "fmt"

// Language is a display-language choice. Translation lookup itself lives in
// the UI layer; the core only stores the preference.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages lists the supported display languages.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "हिन्दी"},
}

// ParseLanguage resolves a language code to a supported Language.
func ParseLanguage(code string) (Language, error) {
	for _, l := range Languages {
		if l.Code == code {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("unsupported language %q", code)
}
