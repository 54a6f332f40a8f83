// Package mcp exposes the assistant over the Model Context Protocol so
// editor agents can chat with it and query its knowledge catalog.
package mcp

import (
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/alukotobi/tobichat/internal/assistant"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the chat and knowledge tools.
type Server struct {
	assist *assistant.Assistant
	mcp    *server.MCPServer

	mu       sync.Mutex
	sessions map[string]*assistant.Session
}

// NewServer creates a new MCP server around the given assistant.
func NewServer(assist *assistant.Assistant) *Server {
	s := &Server{
		assist:   assist,
		sessions: make(map[string]*assistant.Session),
	}

	s.mcp = server.NewMCPServer(
		"tobichat",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(chatTool, s.handleChat)
	s.mcp.AddTool(searchKnowledgeTool, s.handleSearchKnowledge)
	s.mcp.AddTool(relatedConceptsTool, s.handleRelatedConcepts)
}

// session returns the session for id, creating one when id is empty or
// unknown.
func (s *Server) session(id string) *assistant.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			return sess
		}
	}
	sess := assistant.NewSession()
	s.sessions[sess.ID] = sess
	return sess
}

// Serve starts the MCP server on stdio. Stdout carries MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
