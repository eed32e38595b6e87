package i18n

// MainWindowMessages holds the strings of the interactive session
type MainWindowMessages struct {
	Title              string
	ChooseFileHint     string
	ResetToDefault     string
	SelectFolder       string
	Unpack             string
	Retry              string
	OpenFolder         string
	Close              string
	DropFileHint       string
	Error              string
	FileDoesNotExist   string
	InvalidFileFormat  string
	SelectOutputFolder string
	EFDFilesFilter     string
	SelectEFDFile      string
	NoEFDFileSelected  string
	InvalidOutputDir   string
	UnpackError        string

	// Terminal-only strings
	OutputPrompt      string
	ActionPrompt      string
	UnpackingInto     string
	FailedToOpenDir   string
	SessionCancelled  string
	UnpackingProgress string
}

// English main window messages
var EnglishMainWindowMessages = MainWindowMessages{
	Title:              "EFD Unpacker",
	ChooseFileHint:     "Drag .efd file here or click to choose",
	ResetToDefault:     "Reset to Default",
	SelectFolder:       "Select Folder",
	Unpack:             "Unpack",
	Retry:              "Retry",
	OpenFolder:         "Open Folder",
	Close:              "Close",
	DropFileHint:       "Drop file to upload",
	Error:              "Error",
	FileDoesNotExist:   "File does not exist",
	InvalidFileFormat:  "Invalid file format",
	SelectOutputFolder: "Select output folder",
	EFDFilesFilter:     "EFD Files (*.efd)",
	SelectEFDFile:      "Select .efd file",
	NoEFDFileSelected:  "No .efd file selected",
	InvalidOutputDir:   "Invalid output folder",
	UnpackError:        "Unpack error: %1",

	OutputPrompt:      "Unpack into:",
	ActionPrompt:      "What next?",
	UnpackingInto:     "Unpacking %s into %s",
	FailedToOpenDir:   "Failed to open folder: %v",
	SessionCancelled:  "Cancelled",
	UnpackingProgress: "Unpacking",
}

// Russian main window messages
var RussianMainWindowMessages = MainWindowMessages{
	Title:              "EFD Unpacker",
	ChooseFileHint:     "Перетащите .efd файл сюда или нажмите для выбора",
	ResetToDefault:     "Восстановить по-умолчанию",
	SelectFolder:       "Выбрать папку",
	Unpack:             "Распаковать",
	Retry:              "Повторить",
	OpenFolder:         "Открыть папку",
	Close:              "Закрыть",
	DropFileHint:       "Отпустите файл для загрузки",
	Error:              "Ошибка",
	FileDoesNotExist:   "Файл не существует",
	InvalidFileFormat:  "Неверный формат файла",
	SelectOutputFolder: "Выбрать папку для распаковки",
	EFDFilesFilter:     "Файл EFD (*.efd)",
	SelectEFDFile:      "Выбрать .efd файл",
	NoEFDFileSelected:  "Не выбран файл .efd",
	InvalidOutputDir:   "Неверная папка для распаковки",
	UnpackError:        "Ошибка при распаковке: %1",

	OutputPrompt:      "Распаковать в:",
	ActionPrompt:      "Что дальше?",
	UnpackingInto:     "Распаковка %s в %s",
	FailedToOpenDir:   "Не удалось открыть папку: %v",
	SessionCancelled:  "Отменено",
	UnpackingProgress: "Распаковка",
}
