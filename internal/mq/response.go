package mq

import (
	"net/http"
)

type Response struct {
	Code  int    `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func NewOkResponse() Response {
	return Response{
		Code: http.StatusOK,
	}
}

func NewDataResponse(data any) Response {
	return Response{
		Code: http.StatusOK,
		Data: data,
	}
}

func NewBadRequestResponse(errMsg string) Response {
	return Response{
		Code:  http.StatusBadRequest,
		Error: errMsg,
	}
}

func NewInternalErrorResponse(errMsg string) Response {
	return Response{
		Code:  http.StatusInternalServerError,
		Error: errMsg,
	}
}
