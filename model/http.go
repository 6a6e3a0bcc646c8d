package model

type ConvertRequestBody struct {
	Songs [][]string
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
