package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, keyGeneric, defaultGenericMessage)
	message.SetString(lang, keyCollabRequested, `%s wants to collaborate on "%s"`)
	message.SetString(lang, keyCollabAccepted, `%s accepted your collaboration request for "%s"`)
	message.SetString(lang, keyCollabDenied, `%s declined your collaboration request for "%s"`)
}
