// Package toolset binds tool definitions to their handlers and turns
// agent tool-call requests into dispatchable operations.
//
// A [Set] is a registry keyed by canonical namespace:name tool IDs. Each
// entry pairs a toolfoundation model.Tool with a local handler function.
// From a batch of [Request] values (the tool calls an agent loop wants
// executed, in the order it wants the results back) the Set builds the
// op.Operation batch the dispatch layer consumes.
//
// # Read-only classification
//
// Whether an operation may run concurrently comes from the tool's MCP
// annotations: a tool is read-only only when it declares
// Annotations.ReadOnlyHint. A tool with no annotations is treated as
// mutating and serializes its batch. Classification is declarative; the
// handler's actual behavior is the registrant's responsibility.
//
// # Discovery integration
//
// With WithIndex, registered tools are mirrored into a tooldiscovery
// index and Search delegates to it. With WithDocs, Describe serves tool
// documentation from a tooldoc store.
//
// # Basic Usage
//
//	set := toolset.New(toolset.WithIndex(idx))
//	_ = set.Register(model.Tool{
//	    Tool: mcp.Tool{
//	        Name:        "read_file",
//	        Description: "Reads a file from the workspace",
//	        Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
//	    },
//	    Namespace: "fs",
//	}, readFileHandler)
//
//	ops, err := set.Operations([]toolset.Request{
//	    {CallID: "call_1", ToolID: "fs:read_file", Args: map[string]any{"path": "a.txt"}},
//	    {CallID: "call_2", ToolID: "fs:read_file", Args: map[string]any{"path": "b.txt"}},
//	})
package toolset
