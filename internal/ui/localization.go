package ui

import (
	_ "embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/ytget/bookshelf/internal/catalog"
)

//go:embed locales.yaml
var localesYAML []byte

// FallbackLanguage is used when a key is missing in the current language
const FallbackLanguage = "en"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle               = "app_title"
	KeyFile                   = "file"
	KeySettings               = "settings"
	KeyLanguage               = "language"
	KeySave                   = "save"
	KeyCancel                 = "cancel"
	KeySettingsSaved          = "settings_saved"
	KeyCreate                 = "create"
	KeyReset                  = "reset"
	KeyClearAll               = "clear_all"
	KeyDelete                 = "delete"
	KeyFieldTitle             = "field_title"
	KeyFieldAuthor            = "field_author"
	KeyFieldYear              = "field_year"
	KeyFieldISBN              = "field_isbn"
	KeyFieldDescription       = "field_description"
	KeyPlaceholderTitle       = "placeholder_title"
	KeyPlaceholderAuthor      = "placeholder_author"
	KeyPlaceholderYear        = "placeholder_year"
	KeyPlaceholderISBN        = "placeholder_isbn"
	KeyPlaceholderDescription = "placeholder_description"
	KeyEmptyState             = "empty_state"
	KeyConfirmTitle           = "confirm_title"

	// Command outcomes come from the catalog package
	KeyConfirmClearAll = catalog.KeyConfirmClearAll
	KeyTitleRequired   = catalog.KeyTitleRequired
	KeyBookCreated     = catalog.KeyBookCreated
	KeyBookDeleted     = catalog.KeyBookDeleted
	KeyBooksCleared    = catalog.KeyBooksCleared
	KeyFormCleared     = catalog.KeyFormCleared
)

// NewLocalization creates a localization manager from the embedded catalogs
func NewLocalization() *Localization {
	l, err := NewLocalizationFromYAML(localesYAML)
	if err != nil {
		log.Printf("Error loading embedded locales: %v", err)
		return &Localization{
			currentLanguage: FallbackLanguage,
			texts:           make(map[string]map[string]string),
		}
	}
	return l
}

// NewLocalizationFromYAML parses catalogs shaped as language -> key -> text
func NewLocalizationFromYAML(data []byte) (*Localization, error) {
	texts := make(map[string]map[string]string)
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("parse locales: %w", err)
	}
	if _, ok := texts[FallbackLanguage]; !ok {
		return nil, fmt.Errorf("parse locales: missing %q catalog", FallbackLanguage)
	}

	return &Localization{
		currentLanguage: FallbackLanguage,
		texts:           texts,
	}, nil
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = FallbackLanguage
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[FallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}
