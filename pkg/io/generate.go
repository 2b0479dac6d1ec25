package io

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_fileio.go github.com/kasuboski/ingestz/pkg/io FileIO
