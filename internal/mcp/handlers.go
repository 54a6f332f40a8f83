package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alukotobi/tobichat/internal/knowledge"
)

func (s *Server) handleChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	sess := s.session(request.GetString("session_id", ""))
	reply := s.assist.ProcessMessage(ctx, sess, message)

	var sb strings.Builder
	sb.WriteString(reply.Text)
	sb.WriteString(fmt.Sprintf("\n\n---\nsession_id: %s | intent: %s | confidence: %.2f",
		sess.ID, reply.Analysis.Intent, reply.Analysis.Confidence))

	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleSearchKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}
	category := request.GetString("category", "")

	entries := s.assist.Knowledge().Search(query)
	if category != "" {
		var filtered []knowledge.Entry
		for _, e := range entries {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No knowledge entries match %q.", query)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d entr%s:\n\n", len(entries), pluralYIes(len(entries))))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("## %s\n\n%s\n\n*category: %s, difficulty: %s*\n\n",
			e.Topic, e.Content, e.Category, e.Difficulty))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleRelatedConcepts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}

	related := s.assist.Knowledge().Related(topic, 0)
	if len(related) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No related concepts for %q.", topic)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Concepts related to %s:\n\n", topic))
	for _, r := range related {
		sb.WriteString(fmt.Sprintf("- %s\n", r))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func pluralYIes(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
