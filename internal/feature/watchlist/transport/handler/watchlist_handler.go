// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"astock_backend/internal/api"
	"astock_backend/internal/feature/watchlist/domain"
	"astock_backend/internal/feature/watchlist/domain/entity"
	"astock_backend/internal/feature/watchlist/transport/http/dto"
	"astock_backend/internal/shared/symbol"
)

const timeLayout = "2006-01-02 15:04:05"

// unavailable は取得できなかったリアルタイムフィールドのセンチネルです。
const unavailable = "N/A"

// WatchlistUsecase はウォッチリスト操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type WatchlistUsecase interface {
	Add(ctx context.Context, symbol, nameHint string) (entity.WatchlistEntry, error)
	Remove(ctx context.Context, symbol string) error
	List(ctx context.Context) ([]entity.WatchlistEntry, error)
	StocksInfo(ctx context.Context) ([]entity.LiveQuote, error)
	UpdateAllNames(ctx context.Context) (int, error)
}

// WatchlistHandler はウォッチリストのHTTPリクエストを処理します。
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler は指定されたusecaseでWatchlistHandlerの新しいインスタンスを生成します。
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// Add は銘柄をウォッチリストに追加します。
//
// エンドポイント例:
// POST /watchlist/add {"stock_code":"000001"}
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req dto.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "请求体格式错误"})
		return
	}

	code, err := symbol.Validate(req.StockCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "股票代码必须为数字"})
		return
	}

	entry, err := h.uc.Add(c.Request.Context(), code, req.StockName)
	if err != nil {
		if errors.Is(err, domain.ErrSymbolAlreadyExists) {
			c.JSON(http.StatusOK, api.StockResponse{
				Code:    "409",
				Message: "股票已在股票池中",
			})
			return
		}
		slog.Error("watchlist add failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "添加失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.StockResponse{
		Code:    "200",
		Message: "添加成功",
		Data: gin.H{
			"stock_code": entry.Symbol,
			"stock_name": entry.Name,
		},
	})
}

// List はウォッチリストの全銘柄を登録順（新しい順）で返します。
//
// エンドポイント例:
// GET /watchlist/list
func (h *WatchlistHandler) List(c *gin.Context) {
	entries, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("watchlist list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "查询失败: " + err.Error()})
		return
	}

	out := make([]dto.EntryItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.EntryItem{
			StockCode: e.Symbol,
			StockName: e.Name,
			CreatedAt: e.CreatedAt.Format(timeLayout),
			UpdatedAt: e.UpdatedAt.Format(timeLayout),
		})
	}
	c.JSON(http.StatusOK, api.StockResponse{
		Code:    "200",
		Message: "查询成功",
		Data:    out,
	})
}

// Remove は銘柄をウォッチリストから削除します。
//
// エンドポイント例:
// DELETE /watchlist/remove/000001
func (h *WatchlistHandler) Remove(c *gin.Context) {
	code, err := symbol.Validate(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "股票代码必须为数字"})
		return
	}

	if err := h.uc.Remove(c.Request.Context(), code); err != nil {
		if errors.Is(err, domain.ErrSymbolNotFound) {
			c.JSON(http.StatusOK, api.StockResponse{
				Code:    "404",
				Message: "股票不在股票池中",
			})
			return
		}
		slog.Error("watchlist remove failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "删除失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.StockResponse{
		Code:    "200",
		Message: "删除成功",
	})
}

// StocksInfo は全銘柄にリアルタイム情報を付加して返します。
// 取得できなかった銘柄のフィールドは "N/A" になります。
//
// エンドポイント例:
// GET /watchlist/stocks/info
func (h *WatchlistHandler) StocksInfo(c *gin.Context) {
	quotes, err := h.uc.StocksInfo(c.Request.Context())
	if err != nil {
		slog.Error("watchlist stocks info failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "查询失败: " + err.Error()})
		return
	}

	now := time.Now().Format(timeLayout)
	stocks := make([]dto.StockInfoItem, 0, len(quotes))
	for _, lq := range quotes {
		item := dto.StockInfoItem{
			StockCode:     lq.Entry.Symbol,
			StockName:     lq.Entry.Name,
			CurrentPrice:  unavailable,
			ChangePercent: unavailable,
			ChangeAmount:  unavailable,
			Volume:        unavailable,
			UpdateTime:    now,
		}
		if lq.Live != nil {
			// 欠損フィールド（停牌銘柄など）は "N/A" のまま残す
			if lq.Live.Price != nil {
				item.CurrentPrice = *lq.Live.Price
			}
			if lq.Live.ChangePercent != nil {
				item.ChangePercent = *lq.Live.ChangePercent
			}
			if lq.Live.ChangeAmount != nil {
				item.ChangeAmount = *lq.Live.ChangeAmount
			}
			if lq.Live.Volume != nil {
				item.Volume = *lq.Live.Volume
			}
			if lq.Live.Name != "" {
				item.StockName = lq.Live.Name
			}
		}
		stocks = append(stocks, item)
	}

	c.JSON(http.StatusOK, api.StockResponse{
		Code:    "200",
		Message: "查询成功",
		Data: gin.H{
			"total":  len(stocks),
			"stocks": stocks,
		},
	})
}

// UpdateNames は全銘柄の表示名を再解決し、変化があった件数を返します。
//
// エンドポイント例:
// POST /watchlist/update_names
func (h *WatchlistHandler) UpdateNames(c *gin.Context) {
	updated, err := h.uc.UpdateAllNames(c.Request.Context())
	if err != nil {
		slog.Error("watchlist update names failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "更新失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.StockResponse{
		Code:    "200",
		Message: "更新完成",
		Data: gin.H{
			"updated_count": updated,
		},
	})
}
