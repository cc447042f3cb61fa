package ports

// LocaleStrings is the small capability set of fixed documentation strings
// the assembler needs for one locale.
type LocaleStrings struct {
	// SayOneOf introduces the numbered phrase list, e.g. "Say one of:".
	SayOneOf string
	// Implementation is the heading of the source excerpt section.
	Implementation string
	// Commands is the heading of a module's command index.
	Commands string
}

// Localizer maps a locale code to its documentation strings. It is injected
// into the assembler so adding a locale never touches shared global state.
// Implementations must fall back to a sensible default (English) for
// unknown locales rather than failing.
type Localizer interface {
	Strings(lang string) LocaleStrings
}
