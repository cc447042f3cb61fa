package assemble

import "github.com/voxkit/voxdoc/pkg/ports"

// Table is a map-backed ports.Localizer. Unknown locales fall back to
// English, so a missing translation never breaks a build.
type Table map[string]ports.LocaleStrings

// Strings implements ports.Localizer.
func (t Table) Strings(lang string) ports.LocaleStrings {
	if s, ok := t[lang]; ok {
		return s
	}
	return english
}

var english = ports.LocaleStrings{
	SayOneOf:       "Say one of:",
	Implementation: "Implementation",
	Commands:       "Commands",
}

// NewLocalizer returns the built-in localizer with the locales the stock
// documentation ships in.
func NewLocalizer() ports.Localizer {
	return Table{
		"en": english,
		"de": {
			SayOneOf:       "Sagen Sie zum Beispiel:",
			Implementation: "Implementierung",
			Commands:       "Befehle",
		},
		"fr": {
			SayOneOf:       "Dites par exemple :",
			Implementation: "Implémentation",
			Commands:       "Commandes",
		},
		"es": {
			SayOneOf:       "Diga por ejemplo:",
			Implementation: "Implementación",
			Commands:       "Comandos",
		},
		"pt": {
			SayOneOf:       "Diga por exemplo:",
			Implementation: "Implementação",
			Commands:       "Comandos",
		},
	}
}
