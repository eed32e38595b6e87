package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle            string
	VersionLabel            string
	GoVersionLabel          string
	PlatformLabel           string
	DeflateImplementation   string
	VersionCmdShort         string
	VersionCmdLong          string
	FlagConfig              string
	FlagNoColor             string
	FlagLanguage            string
	ErrorFailedToLoadConfig string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "1C:Enterprise EFD supply file unpacker",
	AppLongDescription: `A tool for unpacking 1C:Enterprise supply files (.efd).

Run without a command to start an interactive session,
or use "unpack <file.efd> -tmplts <dir>" for a non-interactive run.`,

	VersionTitle:            "efd-unpacker",
	VersionLabel:            "Version",
	GoVersionLabel:          "Go Version",
	PlatformLabel:           "Platform",
	DeflateImplementation:   "Deflate Implementation",
	VersionCmdShort:         "Show version information",
	VersionCmdLong:          "Display version information including compression implementation details",
	FlagConfig:              "path to .env file with configuration",
	FlagNoColor:             "disable colored output",
	FlagLanguage:            "interface language (en, ru)",
	ErrorFailedToLoadConfig: "Failed to load configuration: %v",
}

// Russian app messages
var RussianAppMessages = AppMessages{
	AppDescription: "Распаковщик файлов поставки 1С:Предприятие (EFD)",
	AppLongDescription: `Инструмент для распаковки файлов поставки 1С:Предприятие (.efd).

Запустите без команды для интерактивного режима
или используйте "unpack <file.efd> -tmplts <dir>" для пакетного запуска.`,

	VersionTitle:            "efd-unpacker",
	VersionLabel:            "Версия",
	GoVersionLabel:          "Версия Go",
	PlatformLabel:           "Платформа",
	DeflateImplementation:   "Реализация Deflate",
	VersionCmdShort:         "Показать информацию о версии",
	VersionCmdLong:          "Показать информацию о версии и реализации сжатия",
	FlagConfig:              "путь к .env файлу с настройками",
	FlagNoColor:             "отключить цветной вывод",
	FlagLanguage:            "язык интерфейса (en, ru)",
	ErrorFailedToLoadConfig: "Не удалось загрузить настройки: %v",
}
