package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type RootResponse struct {
	Message string `json:"message"`
}

type DBCheckResponse struct {
	DBConnected bool `json:"db_connected"`
}
