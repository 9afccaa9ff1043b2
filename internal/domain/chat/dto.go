package chat

type CreateDirectRequest struct {
	RecipientID int64 `json:"recipient_id" validate:"required,gt=0"`
}

type CreateTeamRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=120"`
	MemberIDs []int64 `json:"member_ids"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4000"`
}

type AddMemberRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}
