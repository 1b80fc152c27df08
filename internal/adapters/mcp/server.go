package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/bilingua"
	"github.com/aretw0/bilingua/internal/logging"
	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/aretw0/bilingua/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// PairURI is the resource exposing the pair at the pointer.
const PairURI = "bilingua://pair"

// PairArgs are the arguments of get_pair.
type PairArgs struct {
	Shift int `mapstructure:"shift"`
}

// SaveResponse is returned by save_pair.
type SaveResponse struct {
	Pointer int                  `json:"pointer" jsonschema_description:"Pointer the pair was saved at"`
	Pair    domain.ParagraphPair `json:"pair" jsonschema_description:"Pair now stored at the pointer"`
}

// Server exposes a paragraph store as an MCP server.
type Server struct {
	store     ports.ParagraphStore
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(store ports.ParagraphStore, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		store:     store,
		logger:    logger,
		mcpServer: server.NewMCPServer("bilingua-mcp", strings.TrimSpace(bilingua.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_pointer",
		mcp.WithDescription("Return the shared paragraph pointer."),
	), s.handleGetPointer)

	s.mcpServer.AddTool(mcp.NewTool("set_pointer",
		mcp.WithDescription("Move the shared pointer to paragraph n (n >= 0)."),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("New pointer position")),
	), s.handleSetPointer)

	s.mcpServer.AddTool(mcp.NewTool("get_pair",
		mcp.WithDescription("Return the left/right paragraphs at pointer+shift. Missing paragraphs are empty strings."),
		mcp.WithNumber("shift", mcp.Description("Offset from the pointer (default 0)")),
		mcp.WithOutputSchema[domain.ParagraphPair](),
	), mcp.NewStructuredToolHandler(s.handleGetPair))

	s.mcpServer.AddTool(mcp.NewTool("save_pair",
		mcp.WithDescription("Save the left/right paragraphs at the pointer. Only changed books are rewritten."),
		mcp.WithString("left", mcp.Required(), mcp.Description("Left paragraph text")),
		mcp.WithString("right", mcp.Required(), mcp.Description("Right paragraph text")),
		mcp.WithOutputSchema[SaveResponse](),
	), mcp.NewStructuredToolHandler(s.handleSavePair))
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(PairURI, "Current Paragraph Pair",
		mcp.WithMIMEType("application/json"),
	), s.readPair)
}

func (s *Server) handleGetPointer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strconv.Itoa(s.store.Pointer())), nil
}

func (s *Server) handleSetPointer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := request.RequireFloat("n")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// JSON numbers arrive as float64; only whole values are positions.
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return mcp.NewToolResultError(fmt.Sprintf("pointer must be an integer, got %v", f)), nil
	}
	n := int(f)

	if err := s.store.SetPointer(ctx, n); err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return mcp.NewToolResultError("pointer cannot be negative"), nil
		}
		s.logger.Error("MCP SetPointer failed", "pointer", n, "error", err)
		return mcp.NewToolResultError("failed to store pointer"), nil
	}
	return mcp.NewToolResultText(strconv.Itoa(n)), nil
}

func (s *Server) handleGetPair(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.ParagraphPair, error) {
	var in PairArgs
	if err := decode(args, &in); err != nil {
		return domain.ParagraphPair{}, err
	}
	return s.store.Pair(in.Shift), nil
}

func (s *Server) handleSavePair(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SaveResponse, error) {
	var pair domain.ParagraphPair
	if err := decode(args, &pair); err != nil {
		return SaveResponse{}, err
	}

	index, saved, err := s.store.SaveAt(ctx, pair)
	if err != nil {
		s.logger.Error("MCP Save failed", "error", err)
		return SaveResponse{}, errors.New("failed to save paragraphs")
	}
	return SaveResponse{
		Pointer: index,
		Pair:    saved,
	}, nil
}

func (s *Server) readPair(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.store.Pair(0))
	if err != nil {
		return nil, fmt.Errorf("failed to encode pair: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      PairURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

// decode maps loosely typed tool arguments (JSON numbers arrive as float64) onto out.
func decode(args map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
