package removebg

import (
	"fmt"
)

type Result struct {
	ID   string
	Name string

	Content     []byte
	ContentType string
}

type ResponseError struct {
	Status int
	Reason string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("removebg: %s (status %d)", e.Reason, e.Status)
}

type errorResponse struct {
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}
