package plugin

import (
	"context"
	"encoding/json"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// FieldTypeRPC implements the go-plugin Plugin interface for field types.
type FieldTypeRPC struct {
	plugin.Plugin
	Impl FieldType
}

// Server returns an RPC server for this plugin.
func (p *FieldTypeRPC) Server(*plugin.MuxBroker) (any, error) {
	return &FieldTypeRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *FieldTypeRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &FieldTypeRPCClient{client: c}, nil
}

// FieldTypeRPCServer is the RPC server implementation for field types.
type FieldTypeRPCServer struct {
	Impl FieldType
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *FieldTypeRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// Normalize implements the RPC method for value normalization.
func (s *FieldTypeRPCServer) Normalize(req NormalizeRequest, resp *NormalizeResponse) error {
	result, err := s.Impl.Normalize(context.Background(), req)
	if err != nil {
		return err
	}
	*resp = result
	return nil
}

// Serialize implements the RPC method for value serialization.
func (s *FieldTypeRPCServer) Serialize(req SerializeRequest, resp *SerializeResponse) error {
	result, err := s.Impl.Serialize(context.Background(), req)
	if err != nil {
		return err
	}
	*resp = result
	return nil
}

// Preview implements the RPC method for preview rendering.
func (s *FieldTypeRPCServer) Preview(stored json.RawMessage, resp *PreviewResponse) error {
	result, err := s.Impl.Preview(context.Background(), stored)
	if err != nil {
		return err
	}
	*resp = result
	return nil
}

// Palettes implements the RPC method for palette listing.
func (s *FieldTypeRPCServer) Palettes(_ any, resp *[]PaletteInfo) error {
	result, err := s.Impl.Palettes(context.Background())
	if err != nil {
		return err
	}
	*resp = result
	return nil
}

// FieldTypeRPCClient is the RPC client implementation for field types.
type FieldTypeRPCClient struct {
	client *rpc.Client
}

// GetMetadata calls the remote GetMetadata method.
func (c *FieldTypeRPCClient) GetMetadata() PluginInfo {
	var info PluginInfo
	if err := c.client.Call("Plugin.GetMetadata", new(any), &info); err != nil {
		return PluginInfo{}
	}
	return info
}

// Normalize calls the remote Normalize method.
func (c *FieldTypeRPCClient) Normalize(_ context.Context, req NormalizeRequest) (NormalizeResponse, error) {
	var resp NormalizeResponse
	if err := c.client.Call("Plugin.Normalize", req, &resp); err != nil {
		return NormalizeResponse{}, &RPCError{Message: err.Error()}
	}
	return resp, nil
}

// Serialize calls the remote Serialize method.
func (c *FieldTypeRPCClient) Serialize(_ context.Context, req SerializeRequest) (SerializeResponse, error) {
	var resp SerializeResponse
	if err := c.client.Call("Plugin.Serialize", req, &resp); err != nil {
		return SerializeResponse{}, &RPCError{Message: err.Error()}
	}
	return resp, nil
}

// Preview calls the remote Preview method.
func (c *FieldTypeRPCClient) Preview(_ context.Context, stored json.RawMessage) (PreviewResponse, error) {
	var resp PreviewResponse
	if err := c.client.Call("Plugin.Preview", stored, &resp); err != nil {
		return PreviewResponse{}, &RPCError{Message: err.Error()}
	}
	return resp, nil
}

// Palettes calls the remote Palettes method.
func (c *FieldTypeRPCClient) Palettes(_ context.Context) ([]PaletteInfo, error) {
	var resp []PaletteInfo
	if err := c.client.Call("Plugin.Palettes", new(any), &resp); err != nil {
		return nil, &RPCError{Message: err.Error()}
	}
	return resp, nil
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}
