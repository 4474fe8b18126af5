package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyConvert          = "convert"
	KeyDownload         = "download"
	KeyReset            = "reset"
	KeyChooseFile       = "choose_file"
	KeyAddFile          = "add_file"
	KeyNoFileSelected   = "no_file_selected"
	KeyOutputFormat     = "output_format"
	KeyCustomFilename   = "custom_filename"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyOutputDirectory  = "output_directory"
	KeyServerURL        = "server_url"
	KeyAutoSave         = "auto_save"
	KeyRevealOnSave     = "reveal_on_save"
	KeyTimeoutSeconds   = "timeout_seconds"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyUploading        = "uploading"
	KeyConverting       = "converting"
	KeyCompleted        = "completed"
	KeyFailed           = "failed"
	KeyConversionDone   = "conversion_done"
	KeyErrorOpeningFile = "error_opening_file"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
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
	if texts, exists := l.texts["en"]; exists {
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "ConvDesk",
		KeyConvert:          "Convert",
		KeyDownload:         "Download",
		KeyReset:            "Reset",
		KeyChooseFile:       "Choose File",
		KeyAddFile:          "Add File",
		KeyNoFileSelected:   "No file selected",
		KeyOutputFormat:     "Output Format",
		KeyCustomFilename:   "Custom Filename (optional)",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyOutputDirectory:  "Output Directory",
		KeyServerURL:        "Conversion Server URL",
		KeyAutoSave:         "Save completed files automatically",
		KeyRevealOnSave:     "Show saved files in file manager",
		KeyTimeoutSeconds:   "Conversion timeout in seconds (0 = no timeout)",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyUploading:        "Uploading",
		KeyConverting:       "Converting",
		KeyCompleted:        "Completed",
		KeyFailed:           "Failed",
		KeyConversionDone:   "Conversion completed",
		KeyErrorOpeningFile: "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "ConvDesk",
		KeyConvert:          "Конвертировать",
		KeyDownload:         "Скачать",
		KeyReset:            "Сбросить",
		KeyChooseFile:       "Выбрать файл",
		KeyAddFile:          "Добавить файл",
		KeyNoFileSelected:   "Файл не выбран",
		KeyOutputFormat:     "Формат вывода",
		KeyCustomFilename:   "Имя файла (необязательно)",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyOutputDirectory:  "Папка вывода",
		KeyServerURL:        "URL сервера конвертации",
		KeyAutoSave:         "Автоматически сохранять готовые файлы",
		KeyRevealOnSave:     "Показывать сохранённые файлы в менеджере",
		KeyTimeoutSeconds:   "Таймаут конвертации в секундах (0 = без таймаута)",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyUploading:        "Загрузка",
		KeyConverting:       "Конвертация",
		KeyCompleted:        "Готово",
		KeyFailed:           "Ошибка",
		KeyConversionDone:   "Конвертация завершена",
		KeyErrorOpeningFile: "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "ConvDesk",
		KeyConvert:          "Converter",
		KeyDownload:         "Baixar",
		KeyReset:            "Limpar",
		KeyChooseFile:       "Escolher Arquivo",
		KeyAddFile:          "Adicionar Arquivo",
		KeyNoFileSelected:   "Nenhum arquivo selecionado",
		KeyOutputFormat:     "Formato de Saída",
		KeyCustomFilename:   "Nome do Arquivo (opcional)",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyOutputDirectory:  "Diretório de Saída",
		KeyServerURL:        "URL do Servidor de Conversão",
		KeyAutoSave:         "Salvar arquivos concluídos automaticamente",
		KeyRevealOnSave:     "Mostrar arquivos salvos no gerenciador",
		KeyTimeoutSeconds:   "Tempo limite de conversão em segundos (0 = sem limite)",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyUploading:        "Enviando",
		KeyConverting:       "Convertendo",
		KeyCompleted:        "Concluído",
		KeyFailed:           "Falhou",
		KeyConversionDone:   "Conversão concluída",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
	}
}
