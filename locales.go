package isptranslator

import "strings"

// LocaleNames maps locale codes to human-readable language names used in
// provider prompts.
var LocaleNames = map[string]string{
	"en_US": "English (United States)",
	"en_GB": "English (United Kingdom)",
	"de_DE": "German",
	"es_ES": "Spanish",
	"fr_FR": "French",
	"it_IT": "Italian",
	"ja_JP": "Japanese",
	"ko_KR": "Korean",
	"pt_BR": "Portuguese (Brazil)",
	"ru_RU": "Russian",
	"zh_CN": "Chinese (Simplified)",
	"zh_TW": "Chinese (Traditional)",
	"ar_SA": "Arabic",
	"hi_IN": "Hindi",
	"id_ID": "Indonesian",
	"nl_NL": "Dutch",
	"pl_PL": "Polish",
	"th_TH": "Thai",
	"tr_TR": "Turkish",
	"uk_UA": "Ukrainian",
	"vi_VN": "Vietnamese",
}

// ShortCodeToLocale maps short language codes to full locale codes.
var ShortCodeToLocale = map[string]string{
	"en": "en_US",
	"de": "de_DE",
	"es": "es_ES",
	"fr": "fr_FR",
	"it": "it_IT",
	"ja": "ja_JP",
	"ko": "ko_KR",
	"pt": "pt_BR",
	"ru": "ru_RU",
	"zh": "zh_CN",
	"ar": "ar_SA",
	"hi": "hi_IN",
	"id": "id_ID",
	"nl": "nl_NL",
	"pl": "pl_PL",
	"th": "th_TH",
	"tr": "tr_TR",
	"uk": "uk_UA",
	"vi": "vi_VN",
}

// LocaleName returns the human-readable language name for a locale code.
// Accepts both full locales ("zh_CN", "zh-CN") and short codes ("zh").
// Falls back to the code itself if not found; the locale is an opaque
// identifier, never validated against a registry.
func LocaleName(locale string) string {
	normalized := NormalizeLocale(locale)
	if name, ok := LocaleNames[normalized]; ok {
		return name
	}
	if full, ok := ShortCodeToLocale[strings.ToLower(normalized)]; ok {
		if name, ok := LocaleNames[full]; ok {
			return name
		}
	}
	return locale
}

// NormalizeLocale converts a locale code to the standard format
// (e.g., "zh-CN" → "zh_CN").
func NormalizeLocale(locale string) string {
	return strings.ReplaceAll(locale, "-", "_")
}
