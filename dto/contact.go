package dto

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type ContactReplyInput struct {
	ReplyMessage string `json:"replyMessage" binding:"required"`
}
