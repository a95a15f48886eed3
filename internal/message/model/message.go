package model

import (
	"time"

	userModel "github.com/festy23/travel_together/internal/user/model"
)

// Message is a direct message between two users, optionally about a group.
// Matches the messages table schema.
type Message struct {
	ID          uint64    `gorm:"primaryKey;column:id"                                      json:"id"`
	SenderID    uint64    `gorm:"column:sender_id;not null;index:idx_messages_sender"       json:"sender_id"`
	RecipientID uint64    `gorm:"column:recipient_id;not null;index:idx_messages_recipient" json:"recipient_id"`
	GroupID     *uint64   `gorm:"column:group_id"                                           json:"group_id,omitempty"`
	Subject     string    `gorm:"column:subject;type:varchar(200);not null"                 json:"subject"`
	Body        string    `gorm:"column:message;type:text;not null"                         json:"message"`
	IsRead      bool      `gorm:"column:is_read;not null"                                   json:"is_read"`
	SentAt      time.Time `gorm:"column:sent_at;not null;autoCreateTime"                    json:"sent_at"`
}

// TableName specifies the table name for GORM.
func (Message) TableName() string {
	return "messages"
}

// MessageView is a message with the public profiles of both parties.
type MessageView struct {
	Message
	Sender    *userModel.Profile `json:"sender"`
	Recipient *userModel.Profile `json:"recipient"`
}
