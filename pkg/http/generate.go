package http

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_http.go github.com/kasuboski/ingestz/pkg/http HTTPClient
