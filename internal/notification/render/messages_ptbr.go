package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, keyGeneric, "Você tem uma nova notificação.")
	message.SetString(lang, keyCollabRequested, `%s quer colaborar em "%s"`)
	message.SetString(lang, keyCollabAccepted, `%s aceitou seu pedido de colaboração em "%s"`)
	message.SetString(lang, keyCollabDenied, `%s recusou seu pedido de colaboração em "%s"`)
}
