package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyView               = "view"
	KeyLanguage           = "language"
	KeySettings           = "settings"
	KeyOpenDefinition     = "open_definition"
	KeyRevealDefinition   = "reveal_definition"
	KeyEditDefinition     = "edit_definition"
	KeyReloadDefinition   = "reload_definition"
	KeyBuiltinDefinition  = "builtin_definition"
	KeyContextualGroups   = "contextual_groups"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyDefinitionPath     = "definition_path"
	KeyTabWhitespace      = "tab_whitespace"
	KeyShowGroupWidths    = "show_group_widths"
	KeyAutoReload         = "auto_reload"
	KeySettingsSaved      = "settings_saved"
	KeyErrorLoading       = "error_loading_definition"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyDefinitionReloaded = "definition_reloaded"
	KeyStatusTabs         = "status_tabs"
	KeyStatusGroups       = "status_groups"
	KeyOverflow           = "overflow"
	KeyNoTabs             = "no_tabs"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when
// it is translated and keeps the current language otherwise.
func (l *Localization) SetLanguage(language string) {
	if language == "system" {
		language = systemLanguage()
	}

	if _, exists := l.texts[language]; exists {
		l.currentLanguage = language
	}
}

func systemLanguage() string {
	locale := lang.SystemLocale().LanguageString()
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return strings.ToLower(locale)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if text, found := l.texts["en"][key]; found {
		return text
	}

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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Ribbon Layout",
		KeyFile:               "File",
		KeyView:               "View",
		KeyLanguage:           "Language",
		KeySettings:           "Settings",
		KeyOpenDefinition:     "Open Definition...",
		KeyRevealDefinition:   "Show in File Manager",
		KeyEditDefinition:     "Edit Definition",
		KeyReloadDefinition:   "Reload",
		KeyBuiltinDefinition:  "built-in definition",
		KeyContextualGroups:   "Contextual Tabs",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyDefinitionPath:     "Definition File",
		KeyTabWhitespace:      "Tab Whitespace",
		KeyShowGroupWidths:    "Show group widths",
		KeyAutoReload:         "Reload definition on change",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyErrorLoading:       "Error loading definition",
		KeyErrorOpeningFile:   "Error opening file",
		KeyDefinitionReloaded: "Definition reloaded",
		KeyStatusTabs:         "Tabs",
		KeyStatusGroups:       "Groups",
		KeyOverflow:           "overflow",
		KeyNoTabs:             "No tabs",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Раскладка ленты",
		KeyFile:               "Файл",
		KeyView:               "Вид",
		KeyLanguage:           "Язык",
		KeySettings:           "Настройки",
		KeyOpenDefinition:     "Открыть описание...",
		KeyRevealDefinition:   "Показать в файловом менеджере",
		KeyEditDefinition:     "Редактировать описание",
		KeyReloadDefinition:   "Перезагрузить",
		KeyBuiltinDefinition:  "встроенное описание",
		KeyContextualGroups:   "Контекстные вкладки",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyDefinitionPath:     "Файл описания",
		KeyTabWhitespace:      "Отступ вкладок",
		KeyShowGroupWidths:    "Показывать ширину групп",
		KeyAutoReload:         "Перезагружать описание при изменении",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyErrorLoading:       "Ошибка загрузки описания",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyDefinitionReloaded: "Описание перезагружено",
		KeyStatusTabs:         "Вкладки",
		KeyStatusGroups:       "Группы",
		KeyOverflow:           "переполнение",
		KeyNoTabs:             "Нет вкладок",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Layout da Faixa de Opções",
		KeyFile:               "Arquivo",
		KeyView:               "Exibir",
		KeyLanguage:           "Idioma",
		KeySettings:           "Configurações",
		KeyOpenDefinition:     "Abrir Definição...",
		KeyRevealDefinition:   "Mostrar no Gerenciador de Arquivos",
		KeyEditDefinition:     "Editar Definição",
		KeyReloadDefinition:   "Recarregar",
		KeyBuiltinDefinition:  "definição embutida",
		KeyContextualGroups:   "Guias Contextuais",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyDefinitionPath:     "Arquivo de Definição",
		KeyTabWhitespace:      "Espaço das Guias",
		KeyShowGroupWidths:    "Mostrar largura dos grupos",
		KeyAutoReload:         "Recarregar definição ao alterar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyErrorLoading:       "Erro ao carregar definição",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyDefinitionReloaded: "Definição recarregada",
		KeyStatusTabs:         "Guias",
		KeyStatusGroups:       "Grupos",
		KeyOverflow:           "estouro",
		KeyNoTabs:             "Sem guias",
	}
}
