package api

import "net/http"

func (a *API) Ping(r *Request) (*Response, error) {
	return &Response{Status: http.StatusOK}, nil
}

func (a *API) NotFound(r *Request) (*Response, error) {
	return &Response{Status: http.StatusNotFound}, nil
}
