package plugin

import (
	"fmt"
	"io"
	"log"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

// Serve runs impl as a go-plugin server. It blocks until the host disconnects.
func Serve(impl FieldType, logger hclog.Logger) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &FieldTypeRPC{Impl: impl},
		},
		Logger: logger,
	})
}

// Connection is a running field type plugin process.
type Connection struct {
	FieldType
	client *plugin.Client
}

// Connect launches the plugin binary at path and dispenses its field type.
func Connect(path string, verbose bool, args ...string) (*Connection, error) {
	// Configure logger based on verbose flag.
	var logger hclog.Logger
	if verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	} else {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &FieldTypeRPC{},
		},
		Cmd:              exec.Command(path, args...), // #nosec G204 - plugin path is provided by the host operator
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           logger,
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	field, ok := raw.(FieldType)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("plugin returned unexpected type %T", raw)
	}

	return &Connection{FieldType: field, client: client}, nil
}

// Close stops the plugin process.
func (c *Connection) Close() {
	if c.client != nil {
		c.client.Kill()
		c.client = nil
	}
}
