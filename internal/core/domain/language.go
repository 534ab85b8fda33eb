package domain

// Language identifies the programming language of a piece of source code.
// The set of supported values is fixed by what the Parser API can handle.
type Language string

const (
	LanguagePython Language = "python"
	LanguageC      Language = "c"
	LanguageJava   Language = "java"
)

var supportedLanguages = map[Language]struct{}{
	LanguagePython: {},
	LanguageC:      {},
	LanguageJava:   {},
}

func (l Language) IsSupported() bool {
	_, ok := supportedLanguages[l]
	return ok
}

func (l Language) String() string {
	return string(l)
}
