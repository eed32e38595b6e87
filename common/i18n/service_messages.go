package i18n

// UnpackServiceMessages holds the outcome strings of the unpack service
type UnpackServiceMessages struct {
	Completed       string
	FileNotFound    string
	PermissionError string
	UnexpectedError string
}

// English unpack service messages
var EnglishUnpackServiceMessages = UnpackServiceMessages{
	Completed:       "Unpacking completed successfully",
	FileNotFound:    "File not found",
	PermissionError: "Permission error",
	UnexpectedError: "Unexpected error: %1",
}

// Russian unpack service messages
var RussianUnpackServiceMessages = UnpackServiceMessages{
	Completed:       "Распаковка завершена успешно",
	FileNotFound:    "Файл не найден",
	PermissionError: "Ошибка доступа к файлу",
	UnexpectedError: "Неожиданная ошибка: %1",
}

// SettingsServiceMessages holds the labels of output path suggestions
type SettingsServiceMessages struct {
	LastUsed string
	Default  string
}

// English settings service messages
var EnglishSettingsServiceMessages = SettingsServiceMessages{
	LastUsed: "(last used)",
	Default:  "(default)",
}

// Russian settings service messages
var RussianSettingsServiceMessages = SettingsServiceMessages{
	LastUsed: "(последний использованный)",
	Default:  "(по-умолчанию)",
}

// FileValidatorMessages holds the input and output path validation failures
type FileValidatorMessages struct {
	FileDoesNotExist       string
	PathIsNotAFile         string
	InvalidFileFormat      string
	NoReadPermission       string
	FileIsEmpty            string
	CannotAccessFileSize   string
	OutputPathEmpty        string
	OutputPathNotDirectory string
	NoWritePermission      string
	NoCreatePermission     string
	InvalidOutputPath      string
	FailedToCreateOutput   string
}

// English file validator messages
var EnglishFileValidatorMessages = FileValidatorMessages{
	FileDoesNotExist:       "File does not exist",
	PathIsNotAFile:         "Path is not a file",
	InvalidFileFormat:      "Invalid file format. Expected .efd file",
	NoReadPermission:       "No permission to read file",
	FileIsEmpty:            "File is empty",
	CannotAccessFileSize:   "Cannot access file size",
	OutputPathEmpty:        "Output directory path is empty",
	OutputPathNotDirectory: "Output path exists but is not a directory",
	NoWritePermission:      "No permission to write to output directory",
	NoCreatePermission:     "No permission to create output directory",
	InvalidOutputPath:      "Invalid output directory path",
	FailedToCreateOutput:   "Failed to create output directory: %1",
}

// Russian file validator messages
var RussianFileValidatorMessages = FileValidatorMessages{
	FileDoesNotExist:       "Файл не существует",
	PathIsNotAFile:         "Путь не является файлом",
	InvalidFileFormat:      "Неверный формат файла. Ожидается файл .efd",
	NoReadPermission:       "Нет прав на чтение файла",
	FileIsEmpty:            "Файл пуст",
	CannotAccessFileSize:   "Не удалось получить размер файла",
	OutputPathEmpty:        "Не указан путь к папке для распаковки",
	OutputPathNotDirectory: "Путь существует, но не является папкой",
	NoWritePermission:      "Нет прав на запись в папку для распаковки",
	NoCreatePermission:     "Нет прав на создание папки для распаковки",
	InvalidOutputPath:      "Неверный путь к папке для распаковки",
	FailedToCreateOutput:   "Не удалось создать папку для распаковки: %1",
}
