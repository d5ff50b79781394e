// Package render produces localized notification copy from lifecycle events.
package render

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reelcrew/reelcrew/internal/notification"
)

const (
	defaultGenericMessage = "You have a new notification."

	keyCollabRequested = "notification.collab_requested.message"
	keyCollabAccepted  = "notification.collab_accepted.message"
	keyCollabDenied    = "notification.collab_denied.message"
	keyGeneric         = "notification.generic.message"
)

// Localizer is the minimal message-printer contract required by the renderer.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Input is one render request for a collaboration lifecycle notification.
type Input struct {
	Kind notification.Kind
	// ActorName is the user whose action triggered the notification:
	// the sender on a request, the receiver on an accept or deny.
	ActorName    string
	ProjectTitle string
}

// DefaultLocalizer returns an English message printer.
func DefaultLocalizer() Localizer {
	return message.NewPrinter(language.English)
}

// Message returns localized inbox copy for one lifecycle event.
func Message(loc Localizer, input Input) string {
	if loc == nil {
		loc = DefaultLocalizer()
	}
	actor := strings.TrimSpace(input.ActorName)
	title := strings.TrimSpace(input.ProjectTitle)
	if actor == "" || title == "" {
		return localizeWithFallback(loc, keyGeneric, defaultGenericMessage)
	}

	switch input.Kind {
	case notification.KindCollabRequested:
		return loc.Sprintf(keyCollabRequested, actor, title)
	case notification.KindCollabAccepted:
		return loc.Sprintf(keyCollabAccepted, actor, title)
	case notification.KindCollabDenied:
		return loc.Sprintf(keyCollabDenied, actor, title)
	default:
		return localizeWithFallback(loc, keyGeneric, defaultGenericMessage)
	}
}

func localizeWithFallback(loc Localizer, key string, fallback string) string {
	value := loc.Sprintf(key)
	if value == key {
		return fallback
	}
	return value
}
