package dto

type SendMessageRequest struct {
	ProjectID string `json:"project_id"`
	Content   string `json:"content"`
}

type SendMessageResponse struct {
	Message string `json:"message"`
}
