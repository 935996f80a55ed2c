// Package llmv1 holds the LLM gateway protobuf definitions; the Go
// bindings are generated alongside this file.
package llmv1

//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. llm.proto
