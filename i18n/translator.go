package i18n

// Translator retrieves localized messages for validation error codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "never":
			return "どの値も受け付けません"
		case "predicate_failed":
			return "条件を満たしていません"
		case "convert_error":
			return "変換に失敗しました"
		case "union_no_match":
			return "いずれかの条件を満たす必要があります:"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			if e := data["expected"]; e != "" {
				return "not " + article(e) + " " + e
			}
			return "invalid type"
		case "required":
			return "missing required property"
		case "never":
			return "never matches"
		case "predicate_failed":
			if n := data["name"]; n != "" {
				return "does not satisfy " + n
			}
			return "does not satisfy predicate"
		case "convert_error":
			return "conversion failed"
		case "union_no_match":
			return "must resolve any one of the following issues:"
		}
	}
	return code
}

func article(noun string) string {
	if noun == "" {
		return "a"
	}
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
