// Package proto holds the generated Freshify gRPC service and messages.
package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/freshify --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/freshify freshify/v1/freshify.proto
