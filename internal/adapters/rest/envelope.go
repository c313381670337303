package rest

import "net/http"

// MessagePropertyUnavailable is returned with an empty listing or a missing detail.
const MessagePropertyUnavailable = "Properti tidak tersedia"

// ApiResponse is the envelope every endpoint of this service answers with.
// Message and Data serialize as null when unset.
type ApiResponse struct {
	Success bool        `json:"success"`
	Message *string     `json:"message"`
	Data    interface{} `json:"data"`
}

func respondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	resp := ApiResponse{Success: true, Data: data}
	if message != "" {
		resp.Message = &message
	}
	RespondWithJSON(w, status, resp)
}

func respondFailure(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondWithJSON(w, status, ApiResponse{Success: false, Message: &message, Data: data})
}
