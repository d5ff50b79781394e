// Package errors provides structured error handling for the platform core.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// User errors
	CodeUserNameEmpty        Code = "USER_NAME_EMPTY"
	CodeUserEmailEmpty       Code = "USER_EMAIL_EMPTY"
	CodeUserEmailInvalid     Code = "USER_EMAIL_INVALID"
	CodeUserEmailTaken       Code = "USER_EMAIL_TAKEN"
	CodeUserArtistTypeEmpty  Code = "USER_ARTIST_TYPE_EMPTY"

	// Project errors
	CodeProjectTitleEmpty        Code = "PROJECT_TITLE_EMPTY"
	CodeProjectSummaryEmpty      Code = "PROJECT_SUMMARY_EMPTY"
	CodeProjectInvalidStatus     Code = "PROJECT_INVALID_STATUS"
	CodeProjectNotOwner          Code = "PROJECT_NOT_OWNER"
	CodeProjectOwnerCollaborator Code = "PROJECT_OWNER_COLLABORATOR"

	// Collaboration request errors
	CodeCollabSenderEmpty      Code = "COLLAB_SENDER_EMPTY"
	CodeCollabReceiverEmpty    Code = "COLLAB_RECEIVER_EMPTY"
	CodeCollabProjectEmpty     Code = "COLLAB_PROJECT_EMPTY"
	CodeCollabMessageEmpty     Code = "COLLAB_MESSAGE_EMPTY"
	CodeCollabMessageTooLong   Code = "COLLAB_MESSAGE_TOO_LONG"
	CodeCollabSelfRequest      Code = "COLLAB_SELF_REQUEST"
	CodeCollabProjectNotOwned  Code = "COLLAB_PROJECT_NOT_OWNED"
	CodeCollabNotReceiver      Code = "COLLAB_NOT_RECEIVER"
	CodeCollabDuplicateRequest Code = "COLLAB_DUPLICATE_REQUEST"
	CodeCollabAlreadyProcessed Code = "COLLAB_ALREADY_PROCESSED"
	CodeCollabInvalidDecision  Code = "COLLAB_INVALID_DECISION"

	// Notification errors
	CodeNotificationNotRecipient Code = "NOTIFICATION_NOT_RECIPIENT"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeUserNameEmpty,
		CodeUserEmailEmpty,
		CodeUserEmailInvalid,
		CodeUserArtistTypeEmpty,
		CodeProjectTitleEmpty,
		CodeProjectSummaryEmpty,
		CodeProjectInvalidStatus,
		CodeProjectOwnerCollaborator,
		CodeCollabSenderEmpty,
		CodeCollabReceiverEmpty,
		CodeCollabProjectEmpty,
		CodeCollabMessageEmpty,
		CodeCollabMessageTooLong,
		CodeCollabSelfRequest,
		CodeCollabInvalidDecision:
		return http.StatusBadRequest

	// Unauthorized - actor does not match the required role
	case CodeProjectNotOwner,
		CodeCollabProjectNotOwned,
		CodeCollabNotReceiver,
		CodeNotificationNotRecipient:
		return http.StatusUnauthorized

	// Conflict - state or uniqueness disallows the operation
	case CodeUserEmailTaken,
		CodeCollabDuplicateRequest,
		CodeCollabAlreadyProcessed:
		return http.StatusConflict

	// Not found - resource doesn't exist
	case CodeNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
