// Package models defines API request/response data structures that are not
// domain records.
package models

// ChatRequest is a visitor message to the chatbot.
type ChatRequest struct {
	// Message is the visitor's question.
	Message string `json:"message" example:"What projects has Tunji built?"`

	// ConversationID continues an earlier conversation when set.
	ConversationID string `json:"conversation_id,omitempty" example:"127.0.0.1_1767225600.123456"`
}

// MessageResponse is a bare confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Conversation cleared successfully"`
}

// LoginRequest is an admin sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"admin@example.com"`
	Password string `json:"password" validate:"required"`
}

// ReplyResponse confirms an admin reply e-mail.
type ReplyResponse struct {
	Message string `json:"message" example:"Reply sent successfully"`
	EmailID string `json:"email_id" example:"4ef9a417-02e9-4d39-ad75-9611e0fcc33c"`
}

// DocumentUploadResponse confirms a resume or CV upload.
type DocumentUploadResponse struct {
	Message  string `json:"message" example:"RESUME uploaded successfully"`
	Filename string `json:"filename" example:"resume.pdf"`
	Type     string `json:"type" example:"resume"`
}

// DocumentDeleteResponse confirms a resume or CV removal.
type DocumentDeleteResponse struct {
	Message string `json:"message" example:"CV deleted successfully"`
	Type    string `json:"type" example:"cv"`
}
