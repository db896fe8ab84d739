package models

// ApiResponse is the envelope every endpoint answers with.
type ApiResponse struct {
	Success  bool        `json:"success"`
	Response interface{} `json:"response"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func SuccessResponse(data interface{}) ApiResponse {
	return ApiResponse{
		Success:  true,
		Response: data,
	}
}

func MessageResponse(message string) ApiResponse {
	return ApiResponse{
		Success:  true,
		Response: MessageBody{Message: message},
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success:  false,
		Response: MessageBody{Message: err},
	}
}
