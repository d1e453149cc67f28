// Package api exposes the HTTP control plane and the realtime WebSocket
// endpoint: chat turns, flow loading, bot administration, session
// admin, variable views, and platform webhook intake.
package api

import (
	"context"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/easypath-ai/easypath/pkg/database"
	"github.com/easypath-ai/easypath/pkg/engine"
	"github.com/easypath-ai/easypath/pkg/events"
	"github.com/easypath-ai/easypath/pkg/services"
	"github.com/easypath-ai/easypath/pkg/session"
	"github.com/easypath-ai/easypath/pkg/telegram"
)

// FlowProvider resolves a flow id to its definition in engine or canvas
// JSON form.
type FlowProvider func(ctx context.Context, flowID int) ([]byte, error)

// Deps carries everything the server needs. Optional fields may be nil;
// the corresponding endpoints answer 503.
type Deps struct {
	DB            *database.Client
	Store         session.Store
	Runner        *engine.Runner
	Publisher     *events.Publisher
	ConnManager   *events.ConnectionManager
	Bots          *services.BotService
	Conversations *services.ConversationService
	Variables     *services.VariableService
	Telegram      *telegram.Service
	Flows         FlowProvider
}

// Server is the HTTP/WebSocket front of the platform
type Server struct {
	e          *echo.Echo
	httpServer *http.Server

	db            *database.Client
	store         session.Store
	runner        *engine.Runner
	publisher     *events.Publisher
	connManager   *events.ConnectionManager
	bots          *services.BotService
	conversations *services.ConversationService
	variables     *services.VariableService
	telegram      *telegram.Service
	flows         FlowProvider
}

// NewServer creates the server and registers all routes
func NewServer(deps Deps) *Server {
	s := &Server{
		e:             echo.New(),
		db:            deps.DB,
		store:         deps.Store,
		runner:        deps.Runner,
		publisher:     deps.Publisher,
		connManager:   deps.ConnManager,
		bots:          deps.Bots,
		conversations: deps.Conversations,
		variables:     deps.Variables,
		telegram:      deps.Telegram,
		flows:         deps.Flows,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.e
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/health/", s.healthHandler)

	e.POST("/chat/message", s.chatMessageHandler)
	e.POST("/chat/message-with-flow", s.chatMessageWithFlowHandler)
	e.DELETE("/session/:session_id", s.clearEngineSessionHandler)

	e.GET("/flow/load", s.loadFlowHandler)
	e.GET("/ws/session/:session_id", s.wsHandler)

	e.POST("/bots", s.createBotHandler)
	e.GET("/bots", s.listBotsHandler)
	e.GET("/bots/:id", s.getBotHandler)
	e.PUT("/bots/:id", s.updateBotHandler)
	e.DELETE("/bots/:id", s.deleteBotHandler)
	e.POST("/bots/update-webhooks", s.updateWebhooksHandler)
	e.GET("/bots/:id/conversations", s.botConversationsHandler)
	e.GET("/conversations/:id/messages", s.conversationMessagesHandler)

	e.GET("/sessions", s.listSessionsHandler)
	e.GET("/sessions/:id", s.getSessionHandler)
	e.POST("/sessions/:id/close", s.closeSessionHandler)
	e.POST("/sessions/:id/reset", s.resetSessionHandler)
	e.DELETE("/sessions/:id", s.deleteSessionHandler)

	e.GET("/variables/conversations/:id", s.conversationVariablesHandler)
	e.GET("/variables/bots/:id", s.botVariablesHandler)
	e.GET("/variables/bots/:id/summary", s.botVariablesSummaryHandler)
	e.GET("/variables/flows/:id", s.flowVariablesHandler)
	e.GET("/variables/search", s.searchVariablesHandler)

	e.POST("/webhooks/telegram/:bot_config_id", s.telegramWebhookHandler)
	e.GET("/webhooks/telegram/:bot_config_id/info", s.telegramWebhookInfoHandler)
}

// securityHeaders sets standard security response headers
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// Start listens on addr and serves until Shutdown
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{Addr: addr, Handler: s.e}
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves on an existing listener (used in tests)
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.e}
	return s.httpServer.Serve(ln)
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routing tree for tests
func (s *Server) Handler() http.Handler {
	return s.e
}
