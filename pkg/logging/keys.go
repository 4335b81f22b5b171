package logging

const (
	KeyApp           = "app"
	KeyError         = "err"
	KeyDal           = "dal"
	KeyGuildID       = "guild_id"
	KeyChannelID     = "channel_id"
	KeyUserID        = "user_id"
	KeyInteractionID = "interaction_id"
	KeyCommand       = "command"
)
