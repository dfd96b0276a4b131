// Package proto holds the generated gRPC bindings of the account API.
package proto

//go:generate sh -c "cd ../.. && buf generate"
