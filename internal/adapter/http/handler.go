package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"galaxytrader/internal/app/action"
	"galaxytrader/internal/app/admin"
	"galaxytrader/internal/app/autobot"
	"galaxytrader/internal/app/observe"
	"galaxytrader/internal/app/session"
	"galaxytrader/internal/domain/trading"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ObserveUC observe.UseCase
	ActionUC  action.UseCase
	AdminUC   admin.UseCase
	BotUC     autobot.UseCase
	SessionUC session.UseCase
	KPI       kpiSnapshotProvider
	WS        http.HandlerFunc
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	game := s.Group("/api/game")
	game.GET("/state", h.state)
	game.GET("/prices", h.prices)
	game.GET("/ship", h.ship)
	game.POST("/action", h.action)
	game.POST("/new", h.newGame)
	game.POST("/save", h.save)
	game.POST("/load", h.load)

	bot := s.Group("/api/autobot")
	bot.POST("/start", h.botStart)
	bot.POST("/stop", h.botStop)

	adm := s.Group("/api/admin/planets")
	adm.POST("", h.planetAdd)
	adm.PUT("/:id", h.planetUpdate)
	adm.DELETE("/:id", h.planetDelete)

	s.GET("/ops/kpi", h.kpi)
	if h.WS != nil {
		s.GET("/ws", func(c context.Context, ctx *app.RequestContext) {
			// gorilla's upgrader wants net/http plumbing.
			req, err := adaptor.GetCompatRequest(&ctx.Request)
			if err != nil {
				ctx.AbortWithStatus(consts.StatusInternalServerError)
				return
			}
			h.WS(adaptor.GetCompatResponseWriter(&ctx.Response), req)
		})
	}
}

func (h Handler) state(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.ObserveUC.Game())
}

func (h Handler) prices(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.ObserveUC.PriceTable())
}

func (h Handler) ship(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"report": h.ActionUC.DurabilityReport()})
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body action.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.Execute(c, body)
	if err != nil {
		if errors.Is(err, action.ErrInvalidRequest) {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal", err.Error())
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) newGame(c context.Context, ctx *app.RequestContext) {
	state := h.SessionUC.NewGame(c)
	ctx.JSON(consts.StatusOK, state)
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	if err := h.SessionUC.Save(c); err != nil {
		writeErrorBody(ctx, consts.StatusInternalServerError, "save_failed", err.Error())
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"saved": true})
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	state, isNew, err := h.SessionUC.Load(c)
	if err != nil {
		writeErrorBody(ctx, consts.StatusInternalServerError, "load_failed", err.Error())
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"state": state, "isNewGame": isNew})
}

type botStartRequest struct {
	GoodID              string `json:"goodId"`
	TradeQuantity       int    `json:"tradeQuantity"`
	DestinationPlanetID string `json:"destinationPlanetId"`
	DurationMinutes     int    `json:"durationInMinutes"`
}

func (h Handler) botStart(c context.Context, ctx *app.RequestContext) {
	var body botStartRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	result := h.BotUC.Start(c, trading.AutoBotConfig{
		GoodID:              body.GoodID,
		TradeQuantity:       body.TradeQuantity,
		DestinationPlanetID: body.DestinationPlanetID,
		Duration:            time.Duration(body.DurationMinutes) * time.Minute,
	})
	writeResult(ctx, result)
}

func (h Handler) botStop(c context.Context, ctx *app.RequestContext) {
	writeResult(ctx, h.BotUC.Stop(c))
}

func (h Handler) planetAdd(c context.Context, ctx *app.RequestContext) {
	var draft trading.PlanetDraft
	if err := decodeJSON(ctx, &draft); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	writeResult(ctx, h.AdminUC.AddPlanet(c, draft))
}

func (h Handler) planetUpdate(c context.Context, ctx *app.RequestContext) {
	id := string(ctx.Param("id"))
	var draft trading.PlanetDraft
	if err := decodeJSON(ctx, &draft); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	writeResult(ctx, h.AdminUC.UpdatePlanet(c, id, draft))
}

func (h Handler) planetDelete(c context.Context, ctx *app.RequestContext) {
	writeResult(ctx, h.AdminUC.DeletePlanet(c, string(ctx.Param("id"))))
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

// writeResult maps a mutator result onto the wire: failures are ordinary
// outcomes, not HTTP errors, so the body always carries the code and message.
func writeResult(ctx *app.RequestContext, result trading.Result) {
	ctx.JSON(consts.StatusOK, map[string]any{
		"success": result.OK(),
		"code":    result.Code,
		"message": result.Message,
		"state":   result.State,
	})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]string{"code": code, "message": message})
}
