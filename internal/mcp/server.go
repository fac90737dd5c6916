package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/mfowlewebs/dominos-mcp/internal/commerce"
	"github.com/mfowlewebs/dominos-mcp/internal/logging"
	"github.com/mfowlewebs/dominos-mcp/internal/ordering"
	"github.com/mfowlewebs/dominos-mcp/internal/session"
)

const (
	// ServerName is the MCP server name
	ServerName = "dominos-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the workflow dependencies.
type Server struct {
	mcp      *server.MCPServer
	sessions *session.Store
	ordering *ordering.Service
	log      zerolog.Logger
}

// NewServer creates a server wired to the real provider, configured from
// the environment, with one fresh session.
func NewServer() *Server {
	sessions := session.New()
	client := commerce.NewFromEnv()
	return NewServerWith(sessions, ordering.New(sessions, client))
}

// NewServerWith creates a server around explicit dependencies. Tests use
// this to substitute a mock commerce client.
func NewServerWith(sessions *session.Store, svc *ordering.Service) *Server {
	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		sessions: sessions,
		ordering: svc,
		log:      logging.WithComponent("mcp"),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers one tool per workflow operation.
func (s *Server) registerTools() {
	s.mcp.AddTool(findNearbyStoresTool(), s.handleFindNearbyStores)
	s.mcp.AddTool(getMenuTool(), s.handleGetMenu)
	s.mcp.AddTool(createOrderTool(), s.handleCreateOrder)
	s.mcp.AddTool(addItemToOrderTool(), s.handleAddItemToOrder)
	s.mcp.AddTool(removeItemFromOrderTool(), s.handleRemoveItemFromOrder)
	s.mcp.AddTool(getOrderStateTool(), s.handleGetOrderState)
	s.mcp.AddTool(validateOrderTool(), s.handleValidateOrder)
	s.mcp.AddTool(priceOrderTool(), s.handlePriceOrder)
	s.mcp.AddTool(placeOrderTool(), s.handlePlaceOrder)
	s.mcp.AddTool(trackOrderTool(), s.handleTrackOrder)
}
