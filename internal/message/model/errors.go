package model

import "errors"

var (
	// ErrMessageNotFound indicates that the requested message does not exist.
	ErrMessageNotFound = errors.New("message not found")
	// ErrSelfMessage indicates that the sender and recipient are the same user.
	ErrSelfMessage = errors.New("cannot message yourself")
	// ErrNotRecipient indicates that only the recipient may reply to a message.
	ErrNotRecipient = errors.New("only the recipient can reply to this message")
)
