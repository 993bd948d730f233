package i18n

// Translator retrieves localized messages for issue kinds. data provides
// optional metadata to embed in the message (for example, the underlying
// parse "error").
type Translator interface {
	Message(kind string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(kind string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch kind {
		case "string_type":
			return "有効な文字列を入力してください"
		case "bool_type":
			return "有効な真偽値を入力してください"
		case "bool_parsing":
			return "有効な真偽値として解釈できません"
		case "int_type":
			return "有効な整数を入力してください"
		case "int_parsing":
			return "文字列を整数として解析できません"
		case "int_from_float":
			return "小数部を持つ数値は整数にできません"
		case "float_type":
			return "有効な数値を入力してください"
		case "float_parsing":
			return "文字列を数値として解析できません"
		case "date_type":
			return "有効な日付を入力してください"
		case "date_parsing":
			return "YYYY-MM-DD 形式の有効な日付を入力してください、" + data["error"]
		case "date_from_datetime_inexact":
			return "日付に変換する日時は時刻が零である必要があります"
		case "datetime_type":
			return "有効な日時を入力してください"
		case "datetime_parsing":
			return "有効な日時を入力してください、" + data["error"]
		case "dict_type":
			return "有効な辞書を入力してください"
		case "json_invalid":
			return "不正な JSON です: " + data["error"]
		case "yaml_invalid":
			return "不正な YAML です: " + data["error"]
		case "schema_invalid":
			return "不正なスキーマ定義です: " + data["error"]
		}
	default: // "en"
		switch kind {
		case "string_type":
			return "Input should be a valid string"
		case "bool_type":
			return "Input should be a valid boolean"
		case "bool_parsing":
			return "Input should be a valid boolean, unable to interpret input"
		case "int_type":
			return "Input should be a valid integer"
		case "int_parsing":
			return "Input should be a valid integer, unable to parse string as an integer"
		case "int_from_float":
			return "Input should be a valid integer, got a number with a fractional part"
		case "float_type":
			return "Input should be a valid number"
		case "float_parsing":
			return "Input should be a valid number, unable to parse string as a number"
		case "date_type":
			return "Input should be a valid date"
		case "date_parsing":
			return "Input should be a valid date in the format YYYY-MM-DD, " + data["error"]
		case "date_from_datetime_inexact":
			return "Datetimes provided to dates should have zero time - e.g. be exact dates"
		case "datetime_type":
			return "Input should be a valid datetime"
		case "datetime_parsing":
			return "Input should be a valid datetime, " + data["error"]
		case "dict_type":
			return "Input should be a valid dictionary"
		case "json_invalid":
			return "Invalid JSON: " + data["error"]
		case "yaml_invalid":
			return "Invalid YAML: " + data["error"]
		case "schema_invalid":
			return "Invalid schema definition: " + data["error"]
		}
	}
	return kind
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

// T fetches a message for the given kind using the current Translator.
func T(kind string, data map[string]string) string {
	if data == nil {
		data = map[string]string{}
	}
	return currentTranslator.Message(kind, data)
}
