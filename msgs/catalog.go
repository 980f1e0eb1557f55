package msgs

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// entries maps language → key/term → template. Templates use explicit
// argument indexes so translations may reorder them.
var entries = map[language.Tag]map[string]string{
	language.English: {
		string(ErrNumericRange):   "%[1]s number must be %[2]s than or equal to %[3]s.",
		string(ErrNoTarget):       "There are no %[1]s in the %[2]s.",
		string(ErrNotExist):       "%[1]s does not exist.",
		string(ErrNotSpecify):     "%[1]s is not specified.",
		string(ErrInvalidSpecify): "Please specify %[1]s for %[2]s.",
		string(ErrNotCovered):     "%[1]s requires the prime table to start at or below %[2]s.",

		string(Specified):      "Specified",
		string(Starting):       "Starting",
		string(Ending):         "Ending",
		string(MinBound):       "MinBound",
		string(MaxBound):       "MaxBound",
		string(DecimalPlaces):  "Decimal point position",
		string(Greater):        "greater",
		string(Less):           "less",
		string(EndingNumber):   "ending number",
		string(PrimeNumbers):   "prime numbers",
		string(SpecifiedRange): "specified range",
		string(MultInverse):    "Multiplicative inverse",
		string(SettingValue):   "Setting value",
		string(Algorithm):      "algorithm",
		string(AlgorithmNames): "eratosthenes or atkin",
		string(Factorization):  "Prime factorization",
	},
	language.Japanese: {
		string(ErrNumericRange):   "%[1]sの数値は%[3]s%[2]sである必要があります。",
		string(ErrNoTarget):       "%[2]sに%[1]sはありません。",
		string(ErrNotExist):       "%[1]sは存在しません。",
		string(ErrNotSpecify):     "%[1]sが指定されていません。",
		string(ErrInvalidSpecify): "%[1]sには%[2]sを指定してください。",
		string(ErrNotCovered):     "%[1]sには%[2]s以下から始まる素数表が必要です。",

		string(Specified):      "指定",
		string(Starting):       "開始",
		string(Ending):         "終了",
		string(MinBound):       "最小値",
		string(MaxBound):       "最大値",
		string(DecimalPlaces):  "小数点位置",
		string(Greater):        "以上",
		string(Less):           "以下",
		string(EndingNumber):   "終了数値",
		string(PrimeNumbers):   "素数",
		string(SpecifiedRange): "指定範囲",
		string(MultInverse):    "乗法逆元",
		string(SettingValue):   "設定値",
		string(Algorithm):      "アルゴリズム",
		string(AlgorithmNames): "eratosthenes または atkin",
		string(Factorization):  "素因数分解",
	},
}

// defaultCatalog holds every template; unknown languages fall back to English.
var defaultCatalog = mustBuild()

func mustBuild() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, table := range entries {
		for key, tmpl := range table {
			if err := b.SetString(tag, key, tmpl); err != nil {
				panic("msgs: bad catalog entry " + key + ": " + err.Error())
			}
		}
	}

	return b
}

// Languages lists the tags with a full catalog, English first.
func Languages() []language.Tag {
	return []language.Tag{language.English, language.Japanese}
}

// Match resolves a user-supplied language (e.g. "ja-JP", "en") to the closest
// supported tag. Unparseable input yields English.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}

	return supported(tag)
}

// matcher prefers English: it is the first supported tag.
var matcher = language.NewMatcher(Languages())

// supported maps tag onto one of Languages().
func supported(tag language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tag)

	return Languages()[idx]
}
