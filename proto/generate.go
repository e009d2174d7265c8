// Package proto holds the service definitions. Stubs are generated into
// gen/proto and are not committed.
package proto

//go:generate protoc -I . --go_out=paths=source_relative:../gen/proto --go-grpc_out=paths=source_relative:../gen/proto fms/v1/fms.proto
