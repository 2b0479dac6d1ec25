package qbittorrent

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_client.go github.com/kasuboski/ingestz/pkg/qbittorrent Client
//go:generate go run go.uber.org/mock/mockgen -package http -destination mocks/http/mock_http.go github.com/kasuboski/ingestz/pkg/qbittorrent HTTPClient
