package codec

import (
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for user-facing error text.
const (
	msgIllegalNameEmpty = "codec.illegal-name.empty"
	msgIllegalName      = "codec.illegal-name"
	msgUnsupported      = "codec.unsupported"
	msgMalformedInput   = "codec.malformed-input"
	msgMalfunction      = "codec.malfunction"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		msgIllegalNameEmpty: "illegal codec name: name is empty",
		msgIllegalName:      "illegal codec name %q: invalid character at position %d",
		msgUnsupported:      "unsupported codec %q",
		msgMalformedInput:   "malformed %s input: %v",
		msgMalfunction:      "codec %s malfunctioned during %s: %v",
	},
	language.German: {
		msgIllegalNameEmpty: "ungültiger Codec-Name: Name ist leer",
		msgIllegalName:      "ungültiger Codec-Name %q: unzulässiges Zeichen an Position %d",
		msgUnsupported:      "nicht unterstützter Codec %q",
		msgMalformedInput:   "fehlerhafte %s-Eingabe: %v",
		msgMalfunction:      "Codec %s hat beim %s versagt: %v",
	},
}

var (
	messages = catalog.NewBuilder(catalog.Fallback(language.English))
	printer  atomic.Pointer[message.Printer]
)

func init() {
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := messages.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	SetLanguage(language.English)
}

// SetLanguage selects the language used for error text. Unknown languages
// fall back to English.
func SetLanguage(tag language.Tag) {
	printer.Store(message.NewPrinter(tag, message.Catalog(messages)))
}

// Languages lists the languages error text is available in.
func Languages() []language.Tag {
	return messages.Languages()
}

func sprintf(key string, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
