package i18n

// UnpackMessages holds unpack command translatable strings
type UnpackMessages struct {
	Use                  string
	Short                string
	Long                 string
	FlagTemplates        string
	FlagOpen             string
	FlagVerify           string
	InvalidOrMissingFile string
	UsingOutputPath      string
	FilesWritten         string
	ItemFailed           string
}

// English unpack messages
var EnglishUnpackMessages = UnpackMessages{
	Use:   "unpack <input_file.efd>",
	Short: "Unpack an EFD file to the output directory without prompts",
	Long: `Unpack an EFD supply file to the output directory without prompts.

Example:
  efd-unpacker unpack data.efd -tmplts outdir`,
	FlagTemplates:        "templates directory to unpack into (defaults to the saved output path)",
	FlagOpen:             "open the output directory after a successful unpack",
	FlagVerify:           "re-read written files and compare their SHA-256 with the container",
	InvalidOrMissingFile: "Invalid or missing .efd file: %s",
	UsingOutputPath:      "Unpacking into %s",
	FilesWritten:         "%d of %d files written (%s)",
	ItemFailed:           "%q: %v",
}

// Russian unpack messages
var RussianUnpackMessages = UnpackMessages{
	Use:   "unpack <input_file.efd>",
	Short: "Распаковать EFD файл в выходной каталог без вопросов",
	Long: `Распаковать файл поставки EFD в выходной каталог без вопросов.

Пример:
  efd-unpacker unpack data.efd -tmplts outdir`,
	FlagTemplates:        "каталог шаблонов для распаковки (по умолчанию сохраненный путь)",
	FlagOpen:             "открыть выходной каталог после успешной распаковки",
	FlagVerify:           "перечитать записанные файлы и сверить их SHA-256 с контейнером",
	InvalidOrMissingFile: "Неверный или отсутствующий файл .efd: %s",
	UsingOutputPath:      "Распаковка в %s",
	FilesWritten:         "Записано файлов: %d из %d (%s)",
	ItemFailed:           "%q: %v",
}

// ListMessages holds list command translatable strings
type ListMessages struct {
	Use               string
	Short             string
	Long              string
	TotalEntries      string
	ErrorFailedToList string
}

// English list messages
var EnglishListMessages = ListMessages{
	Use:               "list <input_file.efd>",
	Short:             "List files stored in an EFD file",
	Long:              "List every file stored in an EFD supply file with its size and modification time",
	TotalEntries:      "Total files: %d",
	ErrorFailedToList: "Failed to list files: %v",
}

// Russian list messages
var RussianListMessages = ListMessages{
	Use:               "list <input_file.efd>",
	Short:             "Показать файлы внутри EFD файла",
	Long:              "Показать все файлы внутри файла поставки EFD с размером и временем изменения",
	TotalEntries:      "Всего файлов: %d",
	ErrorFailedToList: "Не удалось получить список файлов: %v",
}

// SettingsMessages holds settings command translatable strings
type SettingsMessages struct {
	Short              string
	ShowShort          string
	SetOutputUse       string
	SetOutputShort     string
	ResetShort         string
	SettingsFile       string
	OutputPath         string
	Candidates         string
	OutputPathSaved    string
	OutputPathReset    string
	ErrorFailedToSave  string
	ErrorFailedToLoad  string
	ErrorFailedToReset string
}

// English settings messages
var EnglishSettingsMessages = SettingsMessages{
	Short:              "Show or change saved settings",
	ShowShort:          "Show saved settings and output path suggestions",
	SetOutputUse:       "set-output <dir>",
	SetOutputShort:     "Save the output directory",
	ResetShort:         "Reset the output directory to default",
	SettingsFile:       "Settings file",
	OutputPath:         "Output path",
	Candidates:         "Suggestions",
	OutputPathSaved:    "Output path saved: %s",
	OutputPathReset:    "Output path reset to %s",
	ErrorFailedToSave:  "Failed to save settings: %v",
	ErrorFailedToLoad:  "Failed to load settings: %v",
	ErrorFailedToReset: "Failed to reset settings: %v",
}

// Russian settings messages
var RussianSettingsMessages = SettingsMessages{
	Short:              "Показать или изменить сохраненные настройки",
	ShowShort:          "Показать настройки и варианты путей распаковки",
	SetOutputUse:       "set-output <dir>",
	SetOutputShort:     "Сохранить каталог распаковки",
	ResetShort:         "Восстановить каталог распаковки по-умолчанию",
	SettingsFile:       "Файл настроек",
	OutputPath:         "Путь распаковки",
	Candidates:         "Варианты",
	OutputPathSaved:    "Путь распаковки сохранен: %s",
	OutputPathReset:    "Путь распаковки сброшен на %s",
	ErrorFailedToSave:  "Не удалось сохранить настройки: %v",
	ErrorFailedToLoad:  "Не удалось загрузить настройки: %v",
	ErrorFailedToReset: "Не удалось сбросить настройки: %v",
}

// PackMessages holds pack command translatable strings
type PackMessages struct {
	Use              string
	Short            string
	Long             string
	FlagStore        string
	PackCompleted    string
	ErrorFailedToRun string
}

// English pack messages
var EnglishPackMessages = PackMessages{
	Use:              "pack <dir>",
	Short:            "Build an EFD file from a directory",
	Long:             "Build an EFD supply file from the files of a directory, mainly for test fixtures",
	FlagStore:        "write the container without compression",
	PackCompleted:    "Packed %d files into %s",
	ErrorFailedToRun: "Failed to pack directory: %v",
}

// Russian pack messages
var RussianPackMessages = PackMessages{
	Use:              "pack <dir>",
	Short:            "Собрать EFD файл из каталога",
	Long:             "Собрать файл поставки EFD из файлов каталога, в основном для тестовых данных",
	FlagStore:        "записать контейнер без сжатия",
	PackCompleted:    "Упаковано файлов: %d в %s",
	ErrorFailedToRun: "Не удалось упаковать каталог: %v",
}
