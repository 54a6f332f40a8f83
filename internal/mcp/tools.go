package mcp

import "github.com/mark3labs/mcp-go/mcp"

// chatTool defines the chat MCP tool.
var chatTool = mcp.NewTool("chat",
	mcp.WithDescription("Send a message to the Tobi AI assistant and get its reply. Pass the session_id from a previous reply to keep conversational context."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The user message to process"),
	),
	mcp.WithString("session_id",
		mcp.Description("Session identifier from a previous chat call; omit to start a new conversation"),
	),
)

// searchKnowledgeTool defines the search_knowledge MCP tool.
var searchKnowledgeTool = mcp.NewTool("search_knowledge",
	mcp.WithDescription("Search the assistant's built-in knowledge catalog of technology topics."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Topic, keyword, or phrase to search for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of entries to return (default 5)"),
	),
	mcp.WithString("category",
		mcp.Description("Restrict results to one category"),
		mcp.Enum("ai", "programming", "web_development", "data_science", "software_development", "cloud", "security"),
	),
)

// relatedConceptsTool defines the related_concepts MCP tool.
var relatedConceptsTool = mcp.NewTool("related_concepts",
	mcp.WithDescription("List concepts related to a topic in the assistant's concept graph."),
	mcp.WithString("topic",
		mcp.Required(),
		mcp.Description("The topic to look up, e.g. 'machine learning'"),
	),
)
