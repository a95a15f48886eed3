package model

// SendRequest is the contact and reply form.
type SendRequest struct {
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

// SendResponse is returned after a message is sent.
type SendResponse struct {
	Message  MessageView `json:"message"`
	Notice   string      `json:"notice"`
	Redirect string      `json:"redirect"`
}

// InboxResponse lists received and sent messages, newest first.
type InboxResponse struct {
	Received []MessageView `json:"received"`
	Sent     []MessageView `json:"sent"`
}
