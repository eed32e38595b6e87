package i18n

import (
	"os"
	"strings"
)

// Language represents supported languages
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

// Placeholder is substituted with a cause string in parameterized messages
const Placeholder = "%1"

// AllMessages holds all translatable strings grouped by context
type AllMessages struct {
	App             AppMessages
	Common          CommonMessages
	MainWindow      MainWindowMessages
	UnpackService   UnpackServiceMessages
	SettingsService SettingsServiceMessages
	FileValidator   FileValidatorMessages
	Unpack          UnpackMessages
	List            ListMessages
	Settings        SettingsMessages
	Pack            PackMessages
}

// CurrentLanguage holds the current language setting
var CurrentLanguage Language = English

// I18nMsg holds the current message set - Global variable for easy access
var I18nMsg = EnglishAllMessages

// English messages
var EnglishAllMessages = AllMessages{
	App:             EnglishAppMessages,
	Common:          EnglishCommonMessages,
	MainWindow:      EnglishMainWindowMessages,
	UnpackService:   EnglishUnpackServiceMessages,
	SettingsService: EnglishSettingsServiceMessages,
	FileValidator:   EnglishFileValidatorMessages,
	Unpack:          EnglishUnpackMessages,
	List:            EnglishListMessages,
	Settings:        EnglishSettingsMessages,
	Pack:            EnglishPackMessages,
}

// Russian messages
var RussianAllMessages = AllMessages{
	App:             RussianAppMessages,
	Common:          RussianCommonMessages,
	MainWindow:      RussianMainWindowMessages,
	UnpackService:   RussianUnpackServiceMessages,
	SettingsService: RussianSettingsServiceMessages,
	FileValidator:   RussianFileValidatorMessages,
	Unpack:          RussianUnpackMessages,
	List:            RussianListMessages,
	Settings:        RussianSettingsMessages,
	Pack:            RussianPackMessages,
}

// DetectLanguage detects the user's language preference based on environment variables.
// EFD_UNPACKER_LANG takes precedence over the locale variables.
func DetectLanguage() Language {
	if lang, ok := ParseLanguage(os.Getenv("EFD_UNPACKER_LANG")); ok {
		return lang
	}

	envVars := []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"}

	for _, envVar := range envVars {
		if lang := os.Getenv(envVar); lang != "" {
			lang = strings.ToLower(lang)
			if strings.Contains(lang, "ru") ||
				strings.Contains(lang, "russian") {
				return Russian
			}
			return English
		}
	}

	return English
}

// ParseLanguage maps a user supplied language code ("ru", "ru_RU.UTF-8", "en") to a Language.
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return "", false
	case strings.HasPrefix(s, "ru"):
		return Russian, true
	case strings.HasPrefix(s, "en"):
		return English, true
	}
	return "", false
}

// SetLanguage sets the current language and updates messages
func SetLanguage(lang Language) {
	CurrentLanguage = lang
	I18nMsg = MessagesFor(lang)
}

// MessagesFor returns the message set of lang without touching the global state
func MessagesFor(lang Language) AllMessages {
	switch lang {
	case Russian:
		return RussianAllMessages
	default:
		return EnglishAllMessages
	}
}

// InitLanguage initializes the language system
func InitLanguage() {
	SetLanguage(DetectLanguage())
}

// IsRussianEnvironment returns true if the current environment is Russian
func IsRussianEnvironment() bool {
	return CurrentLanguage == Russian
}

// Arg substitutes the %1 placeholder of a parameterized message with cause.
func Arg(template, cause string) string {
	return strings.ReplaceAll(template, Placeholder, cause)
}
