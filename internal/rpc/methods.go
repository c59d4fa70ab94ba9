// Package rpc sits between the generated protobuf types in internal/proto
// and the domain: it decodes and validates incoming requests, and converts
// domain values to and from their wire form.
package rpc

import (
	pb "github.com/dmitrijs2005/freshify/internal/proto"
)

// ServiceName is the fully qualified gRPC service, also used for health checks.
var ServiceName = pb.FreshifyService_ServiceDesc.ServiceName

// Methods that do not require an access token.
var PublicMethods = map[string]bool{
	pb.FreshifyService_Ping_FullMethodName:         true,
	pb.FreshifyService_Register_FullMethodName:     true,
	pb.FreshifyService_Login_FullMethodName:        true,
	pb.FreshifyService_RefreshToken_FullMethodName: true,
}
