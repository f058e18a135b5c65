package domain

import "slices"

// Display language codes used for UI text and CMS locales.
const (
	LangEnglish            = "en"
	LangJapanese           = "ja"
	LangKorean             = "ko"
	LangChineseSimplified  = "zh-Hans"
	LangChineseTraditional = "zh-Hant"
)

// DefaultLanguage is the fallback for unsupported display codes.
const DefaultLanguage = LangEnglish

// SupportedLanguages is the closed set of display codes, in CMS fetch order.
var SupportedLanguages = []string{
	LangEnglish,
	LangJapanese,
	LangKorean,
	LangChineseSimplified,
	LangChineseTraditional,
}

// legacyCodes maps display codes to the codes used as keys in legacy tour
// asset maps. Chinese variants stay distinct (cht/chs); the merged "cmn"
// convention of the audio player is not used here.
var legacyCodes = map[string]string{
	LangEnglish:            "eng",
	LangJapanese:           "jpn",
	LangKorean:             "kor",
	LangChineseTraditional: "cht",
	LangChineseSimplified:  "chs",
}

var displayCodes = func() map[string]string {
	m := make(map[string]string, len(legacyCodes))
	for display, legacy := range legacyCodes {
		m[legacy] = display
	}
	return m
}()

// IsSupportedLanguage reports whether code is one of SupportedLanguages.
func IsSupportedLanguage(code string) bool {
	return slices.Contains(SupportedLanguages, code)
}

// NormalizeLanguage returns code when supported and DefaultLanguage otherwise.
func NormalizeLanguage(code string) string {
	if IsSupportedLanguage(code) {
		return code
	}
	return DefaultLanguage
}

// LegacyCode maps a display code to its legacy asset code. Unmapped codes
// pass through unchanged so new upstream codes work without a table update.
func LegacyCode(display string) string {
	if code, ok := legacyCodes[display]; ok {
		return code
	}
	return display
}

// DisplayCode maps a legacy asset code back to a display code. Unmapped
// codes pass through unchanged.
func DisplayCode(legacy string) string {
	if code, ok := displayCodes[legacy]; ok {
		return code
	}
	return legacy
}
