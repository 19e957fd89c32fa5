package models

import "time"

// ChatMessage is one line of an AI tutor conversation.
type ChatMessage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Message   string    `json:"message"`
	IsAI      bool      `json:"isAI"`
	Subject   *string   `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateChatMessageRequest is the payload of POST /chat.
type CreateChatMessageRequest struct {
	UserID  int     `json:"userId" validate:"gte=0"`
	Message string  `json:"message" validate:"required,max=4000"`
	IsAI    bool    `json:"isAI"`
	Subject *string `json:"subject" validate:"omitempty,max=64"`
}

// ChatExchange pairs a stored message with the tutor reply generated for it.
type ChatExchange struct {
	UserMessage ChatMessage  `json:"userMessage"`
	AIMessage   *ChatMessage `json:"aiMessage,omitempty"`
}
