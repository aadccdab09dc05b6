package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError)
}

// Toolbox stores and dispatches tools by name.
type Toolbox struct {
	tools map[string]Tool
	order []string
}

// NewToolbox constructs a toolbox with the provided tools.
func NewToolbox(tools ...Tool) *Toolbox {
	m := make(map[string]Tool, len(tools))
	order := make([]string, 0, len(tools))
	for _, t := range tools {
		desc := t.Descriptor()
		if _, dup := m[desc.Name]; !dup {
			order = append(order, desc.Name)
		}
		m[desc.Name] = t
	}
	sort.Strings(order)
	return &Toolbox{tools: m, order: order}
}

// Describe returns all tool descriptors in stable name order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call invokes a named tool. Unknown names surface as method-not-found so
// clients can distinguish a missing tool from a failing one.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.CallResult{}, &protocol.ResponseError{Code: protocol.CodeMethodNotFound, Message: fmt.Sprintf("Tool '%s' not found", name)}
	}
	return tool.Invoke(ctx, args)
}
