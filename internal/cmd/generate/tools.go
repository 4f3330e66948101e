//go:build tools

// this file is here so that `go mod download` will download the modules needed to build the project
package main

import (
	_ "google.golang.org/grpc/cmd/protoc-gen-go-grpc"
	_ "google.golang.org/protobuf/cmd/protoc-gen-go"
)
