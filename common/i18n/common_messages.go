package i18n

// CommonMessages holds common translatable strings
type CommonMessages struct {
	// Error messages
	ErrorFailedToOpen        string
	ErrorFailedToCreateDir   string
	ErrorFailedToWriteFile   string
	ErrorFailedToMarshalJSON string
	ErrorPrefix              string
	OKPrefix                 string

	// Common flag descriptions
	FlagOut     string
	FlagJSON    string
	FlagWorkers string
	FlagQuiet   string
	ElapsedTime string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorFailedToOpen:        "Failed to open supply file: %v",
	ErrorFailedToCreateDir:   "Failed to create output directory: %v",
	ErrorFailedToWriteFile:   "Failed to write file: %v",
	ErrorFailedToMarshalJSON: "Failed to marshal JSON: %v",
	ErrorPrefix:              "[ERROR]",
	OKPrefix:                 "[OK]",

	FlagOut:     "output directory",
	FlagJSON:    "output as JSON",
	FlagWorkers: "number of concurrent file writers",
	FlagQuiet:   "suppress progress output",
	ElapsedTime: "Elapsed time: %s",
}

// Russian common messages
var RussianCommonMessages = CommonMessages{
	ErrorFailedToOpen:        "Не удалось открыть файл поставки: %v",
	ErrorFailedToCreateDir:   "Не удалось создать выходной каталог: %v",
	ErrorFailedToWriteFile:   "Не удалось записать файл: %v",
	ErrorFailedToMarshalJSON: "Не удалось сформировать JSON: %v",
	ErrorPrefix:              "[ERROR]",
	OKPrefix:                 "[OK]",

	FlagOut:     "выходной каталог",
	FlagJSON:    "вывести в формате JSON",
	FlagWorkers: "количество потоков записи файлов",
	FlagQuiet:   "не показывать прогресс",
	ElapsedTime: "Затраченное время: %s",
}
