package model

import "errors"

var (
	// ErrGroupNotFound indicates that the requested group does not exist.
	ErrGroupNotFound = errors.New("group not found")
	// ErrNotGroupCreator indicates that only the creator may modify the group.
	ErrNotGroupCreator = errors.New("only the group creator can modify this group")
	// ErrAlreadyMember indicates that the user already belongs to the group.
	ErrAlreadyMember = errors.New("already a member of this group")
	// ErrGroupFull indicates that the group reached its member capacity.
	ErrGroupFull = errors.New("group is full")
)
