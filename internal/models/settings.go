package models

type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

func (t ThemeMode) Valid() bool {
	return t == ThemeSystem || t == ThemeLight || t == ThemeDark
}

// SlotModePolicy controls whether days are subdivided into time slots:
// a single undivided bucket per day, three slots on every day, or decided
// per day by where items already sit.
type SlotModePolicy string

const (
	SlotModeSingle SlotModePolicy = "single"
	SlotModeSlots  SlotModePolicy = "slots"
	SlotModePerDay SlotModePolicy = "perDay"
)

func (p SlotModePolicy) Valid() bool {
	return p == SlotModeSingle || p == SlotModeSlots || p == SlotModePerDay
}

var supportedLanguages = map[string]bool{
	"en": true,
	"es": true,
	"pt": true,
	"de": true,
	"fr": true,
}

// ValidLanguageTag reports whether tag names a language the app ships
// translations for.
func ValidLanguageTag(tag string) bool {
	return supportedLanguages[tag]
}

type Settings struct {
	ThemeMode      ThemeMode      `json:"themeMode"`
	LanguageTag    string         `json:"languageTag"`
	SlotModePolicy SlotModePolicy `json:"slotModePolicy"`
}

func DefaultSettings() Settings {
	return Settings{
		ThemeMode:      ThemeSystem,
		LanguageTag:    "en",
		SlotModePolicy: SlotModeSingle,
	}
}
