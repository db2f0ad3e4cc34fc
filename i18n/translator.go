package i18n

// Translator retrieves localized messages for error codes ("E000".."E033").
// data provides optional metadata to embed in the message.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messagesEN = map[string]string{
	"E000": "No error",
	"E001": "Illegal start of sentence, expected $ or !",
	"E002": "Illegal address field",
	"E003": "Illegal end of sentence, expected checksum field",
	"E004": "Checksum error",
	"E005": "Unknown talker ID",
	"E006": "Illegal character in address field",
	"E007": "Undefined character",
	"E008": "Illegal character in data field",
	"E009": "Unknown sentence formatter",
	"E010": "Illegal character in talker id",
	"E011": "Illegal character in proprietary talker",
	"E012": "Illegal character in sentence formatter",
	"E013": "Illegal length of field",
	"E014": "Illegal character in alpha field",
	"E015": "Illegal number of fields for sentence",
	"E016": "Mandatory field can't be empty",
	"E017": "Illegal character literal",
	"E018": "Illegal character in numeric field",
	"E019": "Illegal character in time field",
	"E020": "Illegal character in time field, expected period",
	"E021": "Illegal character in hex field",
	"E022": "Illegal character in six-bit binary representation field",
	"E023": "Illegal length of sentence",
	"E024": "Illegal character, expected CR",
	"E025": "Illegal character, expected LF",
	"E026": "Illegal character, expected tag block end",
	"E027": "Unknown parameter code",
	"E028": "Illegal character, expected colon",
	"E029": "Identification field too long",
	"E030": "Illegal character in identification field, expected alphanumeric",
	"E031": "Illegal character, expected digit",
	"E032": "Illegal character in sentence group field, expected hyphen",
	"E033": "Unexpected end of line",
}

var messagesJA = map[string]string{
	"E000": "エラーなし",
	"E001": "センテンスの開始が不正です（$ または ! が必要です）",
	"E002": "アドレスフィールドが不正です",
	"E003": "センテンスの終端が不正です（チェックサムフィールドが必要です）",
	"E004": "チェックサムエラー",
	"E005": "未知のトーカーIDです",
	"E006": "アドレスフィールドに不正な文字があります",
	"E007": "未定義の文字です",
	"E008": "データフィールドに不正な文字があります",
	"E009": "未知のセンテンスフォーマッタです",
	"E010": "トーカーIDに不正な文字があります",
	"E011": "独自トーカーに不正な文字があります",
	"E012": "センテンスフォーマッタに不正な文字があります",
	"E013": "フィールド長が不正です",
	"E014": "英字フィールドに不正な文字があります",
	"E015": "センテンスのフィールド数が不正です",
	"E016": "必須フィールドが空です",
	"E017": "不正な文字リテラルです",
	"E018": "数値フィールドに不正な文字があります",
	"E019": "時刻フィールドに不正な文字があります",
	"E020": "時刻フィールドに不正な文字があります（ピリオドが必要です）",
	"E021": "16進フィールドに不正な文字があります",
	"E022": "6ビットバイナリ表現フィールドに不正な文字があります",
	"E023": "センテンス長が不正です",
	"E024": "不正な文字です（CR が必要です）",
	"E025": "不正な文字です（LF が必要です）",
	"E026": "不正な文字です（タグブロックの終端が必要です）",
	"E027": "未知のパラメータコードです",
	"E028": "不正な文字です（コロンが必要です）",
	"E029": "識別フィールドが長すぎます",
	"E030": "識別フィールドに不正な文字があります（英数字が必要です）",
	"E031": "不正な文字です（数字が必要です）",
	"E032": "センテンスグループフィールドに不正な文字があります（ハイフンが必要です）",
	"E033": "予期しない行末です",
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	table := messagesEN
	fallback := "Unknown error code"
	if t.lang == "ja" {
		table = messagesJA
		fallback = "未知のエラーコードです"
	}
	if msg, ok := table[code]; ok {
		return msg
	}
	return fallback
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
