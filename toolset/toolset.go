package toolset

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"

	"github.com/jonwraymond/tooldispatch/op"
)

// Errors returned by registry operations.
var (
	// ErrToolExists is returned when registering a duplicate tool ID.
	ErrToolExists = errors.New("toolset: tool already registered")

	// ErrToolNotFound is returned when a request names an unknown tool.
	ErrToolNotFound = errors.New("toolset: tool not found")

	// ErrInvalidToolID is returned for malformed tool IDs.
	ErrInvalidToolID = errors.New("toolset: invalid tool ID format")

	// ErrNoIndex is returned by Search when no index is configured.
	ErrNoIndex = errors.New("toolset: no index configured")

	// ErrNoDocs is returned by Describe when no doc store is configured.
	ErrNoDocs = errors.New("toolset: no doc store configured")
)

// Request is one tool call requested by an agent loop. Request order in
// a batch encodes the caller's intended result order, not execution
// order.
type Request struct {
	// CallID correlates the outcome with the request. Positional
	// reordering uses batch order, so CallID only labels results.
	// Falls back to ToolID when empty.
	CallID string

	// ToolID is the canonical namespace:name ID of the tool to run.
	ToolID string

	// Args are the arguments passed to the tool handler.
	Args map[string]any
}

// Set binds registered tool definitions to their local handlers and
// builds dispatchable operations from requests.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: use ErrToolExists/ErrToolNotFound/ErrInvalidToolID where applicable.
// - Ownership: registered tools are copied by value; request args are read-only.
type Set struct {
	cfg   Config
	mu    sync.RWMutex
	tools map[string]entry
}

type entry struct {
	tool    model.Tool
	handler op.Handler
}

// New creates an empty Set with the given options.
func New(opts ...Option) *Set {
	var cfg Config
	for _, o := range opts {
		o(&cfg)
	}
	return &Set{
		cfg:   cfg,
		tools: make(map[string]entry),
	}
}

// Register adds a tool definition and its handler, keyed by the tool's
// canonical namespace:name ID. When an index is configured the tool is
// mirrored into it for search.
func (s *Set) Register(tool model.Tool, h op.Handler) error {
	if h == nil {
		return fmt.Errorf("toolset: handler is nil")
	}
	if tool.Name == "" {
		return fmt.Errorf("toolset: tool name is required")
	}
	id := FormatToolID(tool.Namespace, tool.Name)

	s.mu.Lock()
	if _, exists := s.tools[id]; exists {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrToolExists, id)
	}
	s.tools[id] = entry{tool: tool, handler: h}
	s.mu.Unlock()

	if s.cfg.Index != nil {
		return s.cfg.Index.RegisterTool(tool, model.NewLocalBackend(id))
	}
	return nil
}

// Get retrieves a registered tool and its handler by canonical ID.
func (s *Set) Get(id string) (model.Tool, op.Handler, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.tools[id]
	if !ok {
		return model.Tool{}, nil, false
	}
	return e.tool, e.handler, true
}

// List returns all registered tool definitions.
func (s *Set) List() []model.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Tool, 0, len(s.tools))
	for _, e := range s.tools {
		out = append(out, e.tool)
	}
	return out
}

// Names returns registered tool IDs sorted for deterministic output.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.tools))
	for id := range s.tools {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Operation builds a dispatchable operation for a single request.
// The operation is read-only only when the tool's MCP annotations
// declare ReadOnlyHint; a tool without annotations is treated as
// mutating.
func (s *Set) Operation(req Request) (op.Operation, error) {
	tool, handler, ok := s.Get(req.ToolID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, req.ToolID)
	}

	id := req.CallID
	if id == "" {
		id = req.ToolID
	}
	readOnly := tool.Annotations != nil && tool.Annotations.ReadOnlyHint
	args := req.Args

	return op.NewFunc(id, readOnly, func(ctx context.Context) (any, error) {
		return handler(ctx, args)
	}), nil
}

// Operations builds the operation batch for a slice of requests,
// preserving request order. It fails on the first unknown tool so a
// batch never starts half-resolved.
func (s *Set) Operations(reqs []Request) ([]op.Operation, error) {
	ops := make([]op.Operation, len(reqs))
	for i, req := range reqs {
		o, err := s.Operation(req)
		if err != nil {
			return nil, err
		}
		ops[i] = o
	}
	return ops, nil
}

// Search finds registered tools matching the query through the
// configured index.
func (s *Set) Search(query string, limit int) ([]index.Summary, error) {
	if s.cfg.Index == nil {
		return nil, ErrNoIndex
	}
	return s.cfg.Index.Search(query, limit)
}

// Describe returns documentation for a tool at the given detail level
// through the configured doc store.
func (s *Set) Describe(id string, level tooldoc.DetailLevel) (tooldoc.ToolDoc, error) {
	if s.cfg.Docs == nil {
		return tooldoc.ToolDoc{}, ErrNoDocs
	}
	return s.cfg.Docs.DescribeTool(id, level)
}

// FormatToolID builds a canonical tool ID from namespace and name.
func FormatToolID(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return fmt.Sprintf("%s:%s", namespace, name)
}

// ParseToolID splits a canonical tool ID into namespace and name.
func ParseToolID(id string) (namespace, name string, err error) {
	namespace, name, err = model.ParseToolID(id)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidToolID, id)
	}
	return namespace, name, nil
}
