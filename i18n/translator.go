package i18n

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "class" or "type_id").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "no_rule_for_class":
			return "変換ルールが登録されていません"
		case "unknown_type_id":
			return "未知の型IDです"
		case "invalid_input_class":
			return "変換できない入力型です"
		case "invalid_translation_spec":
			return "変換ルールが不正です"
		case "conflicting_rule":
			return "変換ルールが重複しています"
		case "builder_closed":
			return "ビルダーは既にビルド済みです"
		case "malformed_payload":
			return "ペイロードを解析できません"
		}
	default: // "en"
		switch code {
		case "no_rule_for_class":
			return "no conversion rule for class"
		case "unknown_type_id":
			return "unknown type id"
		case "invalid_input_class":
			return "invalid input class"
		case "invalid_translation_spec":
			return "invalid translation rule"
		case "conflicting_rule":
			return "conflicting rule registration"
		case "builder_closed":
			return "builder already built"
		case "malformed_payload":
			return "malformed payload"
		}
	}
	return code
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
