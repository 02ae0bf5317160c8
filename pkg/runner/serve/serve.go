// Package serve exposes the journal as a local JSON API.
package serve

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/companion"
	"tableflip.dev/mindmate/pkg/profile"
	mmcp "tableflip.dev/mindmate/pkg/runner/mcp"
)

type EntryRequest struct {
	Mood    string `json:"mood"`
	Journal string `json:"journal"`
}

type ProfileRequest struct {
	Name string `json:"name"`
}

type ProfileResponse struct {
	Name      string `json:"name"`
	Greeting  string `json:"greeting,omitempty"`
	Onboarded bool   `json:"onboarded"`
}

type MessageRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply   companion.Turn   `json:"reply"`
	History []companion.Turn `json:"history"`
}

type Server struct {
	echo *echo.Echo
	app  *app.Service
	svc  *mmcp.Service
}

// NewServer builds the API over a. Request logging is enabled when verbose.
func NewServer(a *app.Service, verbose bool) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	if verbose {
		e.Use(middleware.Logger())
	}

	s := &Server{echo: e, app: a, svc: mmcp.NewService(a)}
	s.setupRoutes()
	return s
}

// ServeHTTP lets the server be mounted or tested directly.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr until ctx is done.
func (s *Server) Start(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.echo.Shutdown(shutdownCtx)
	}()
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) setupRoutes() {
	s.echo.GET("/healthz", s.health)

	api := s.echo.Group("/api")
	api.GET("/entries", s.listEntries)
	api.POST("/entries", s.logMood)
	api.GET("/entries/:id", s.getEntry)
	api.GET("/trend", s.weeklyTrend)
	api.GET("/profile", s.getProfile)
	api.PUT("/profile", s.putProfile)
	api.POST("/suggestions", s.suggestions)
	api.GET("/chat", s.chatHistory)
	api.POST("/chat", s.sendMessage)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listEntries(c echo.Context) error {
	entries, err := s.svc.ListEntries(c.Request().Context(), c.QueryParam("last"), 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":   len(entries),
		"entries": entries,
	})
}

func (s *Server) logMood(c echo.Context) error {
	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	dto, err := s.svc.LogMood(c.Request().Context(), req.Mood, req.Journal)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, dto)
}

func (s *Server) getEntry(c echo.Context) error {
	dto, err := s.svc.EntryByID(c.Request().Context(), c.Param("id"))
	switch {
	case errors.Is(err, mmcp.ErrEntryNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto)
}

func (s *Server) weeklyTrend(c echo.Context) error {
	week, err := s.svc.WeeklyTrend(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, week)
}

func (s *Server) getProfile(c echo.Context) error {
	ctx := c.Request().Context()
	name, ok := s.app.UserName(ctx)
	greeting, _ := s.app.Greeting(ctx)
	return c.JSON(http.StatusOK, ProfileResponse{Name: name, Greeting: greeting, Onboarded: ok})
}

func (s *Server) putProfile(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := s.app.SetUserName(ctx, req.Name); err != nil {
		if errors.Is(err, profile.ErrNameTooShort) {
			return echo.NewHTTPError(http.StatusBadRequest, profile.NameTooShortMessage)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return s.getProfile(c)
}

func (s *Server) suggestions(c echo.Context) error {
	out, err := s.svc.Suggestions(c.Request().Context())
	if errors.Is(err, companion.ErrBusy) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) chatHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, ChatResponse{History: s.app.Conversation.Turns()})
}

func (s *Server) sendMessage(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	turn, err := s.app.Chat(c.Request().Context(), req.Message)
	switch {
	case errors.Is(err, companion.ErrEmptyMessage):
		return echo.NewHTTPError(http.StatusBadRequest, companion.EmptyMessageText)
	case errors.Is(err, companion.ErrBusy):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ChatResponse{Reply: turn, History: s.app.Conversation.Turns()})
}
