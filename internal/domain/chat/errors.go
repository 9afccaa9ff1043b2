package chat

import "errors"

var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrNotMember       = errors.New("you are not a member of this channel")
	ErrNotCreator      = errors.New("only the channel creator can perform this action")
	ErrAlreadyMember   = errors.New("user is already a member")
	ErrSelfChannel     = errors.New("cannot start a direct channel with yourself")
)
