package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")

	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrInvalidYAMLStructure = errors.New("invalid YAML translation structure")

	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyTranslationFile = errors.New("translation file is empty")
	ErrNoTranslationFiles   = errors.New("no translation files found")

	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
	ErrInvalidTranslations   = errors.New("invalid translations")
)
