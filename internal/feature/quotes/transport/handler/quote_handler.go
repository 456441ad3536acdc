// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"astock_backend/internal/api"
	"astock_backend/internal/feature/quotes/domain/entity"
	"astock_backend/internal/feature/quotes/transport/http/dto"
	"astock_backend/internal/feature/quotes/usecase"
	"astock_backend/internal/shared/symbol"
)

const dateLayout = "2006-01-02"

// QuotesUsecase は株価クエリのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuotesUsecase interface {
	GetDaily(ctx context.Context, symbol string, date time.Time) (entity.DailyBar, error)
	GetTrailingDaily(ctx context.Context, symbol string) (entity.DailyRange, error)
	GetRealtime(ctx context.Context, symbol string) ([]entity.MinuteBar, error)
}

// QuoteHandler は株価クエリのHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuotesUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuotesUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetDaily は指定日の日足データを返します。
//
// エンドポイント例:
// GET /stock/daily/000001?date=2024-01-05
func (h *QuoteHandler) GetDaily(c *gin.Context) {
	code, err := symbol.Validate(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "股票代码必须为数字"})
		return
	}

	// date未指定の場合は当日を使用
	var date time.Time
	dateStr := c.Query("date")
	if dateStr != "" {
		date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "日期格式错误，请使用YYYY-MM-DD格式"})
			return
		}
	}

	bar, err := h.uc.GetDaily(c.Request.Context(), code, date)
	if err != nil {
		if errors.Is(err, usecase.ErrNoData) {
			label := dateStr
			if label == "" {
				label = "今天"
			}
			c.JSON(http.StatusOK, api.StockResponse{
				Code:    "404",
				Message: fmt.Sprintf("未找到股票 %s 在 %s 的数据", code, label),
			})
			return
		}
		slog.Error("daily quote query failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "查询失败: " + err.Error()})
		return
	}

	if dateStr == "" {
		// date未指定時はusecaseが解決した当日の足が返るので、その日付をエコーする
		dateStr = bar.Date
	}
	c.JSON(http.StatusOK, api.StockResponse{
		Code:    "200",
		Message: "查询成功",
		Data: gin.H{
			"stock_code": code,
			"date":       dateStr,
			"stock_data": toDailyRow(code, bar),
		},
	})
}

// GetMonthly は直近1ヶ月（30暦日）の日足データを返します。
//
// エンドポイント例:
// GET /stock/monthly/000001
func (h *QuoteHandler) GetMonthly(c *gin.Context) {
	code, err := symbol.Validate(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "股票代码必须为数字"})
		return
	}

	rng, err := h.uc.GetTrailingDaily(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrNoData) {
			c.JSON(http.StatusOK, api.StockResponse{
				Code:    "404",
				Message: fmt.Sprintf("未找到股票 %s 最近一个月的数据", code),
			})
			return
		}
		slog.Error("monthly quote query failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "查询失败: " + err.Error()})
		return
	}

	rows := make([]dto.DailyRow, 0, len(rng.Bars))
	for _, bar := range rng.Bars {
		rows = append(rows, toDailyRow(code, bar))
	}
	c.JSON(http.StatusOK, api.StockResponse{
		Code:    "200",
		Message: "查询成功",
		Data: gin.H{
			"stock_code":    code,
			"period":        fmt.Sprintf("%s 到 %s", rng.Start.Format(dateLayout), rng.End.Format(dateLayout)),
			"total_records": len(rows),
			"stock_data":    rows,
		},
	})
}

// GetRealtime は当日の分時データの直近20分を返します。
//
// エンドポイント例:
// GET /stock/realtime/000001
func (h *QuoteHandler) GetRealtime(c *gin.Context) {
	code, err := symbol.Validate(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "股票代码必须为数字"})
		return
	}

	bars, err := h.uc.GetRealtime(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrNoData) {
			c.JSON(http.StatusOK, api.StockResponse{
				Code:    "404",
				Message: fmt.Sprintf("未找到股票 %s 的实时分钟数据", code),
			})
			return
		}
		slog.Error("realtime quote query failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "查询失败: " + err.Error()})
		return
	}

	rows := make([]dto.MinuteRow, 0, len(bars))
	for _, bar := range bars {
		rows = append(rows, dto.MinuteRow{
			Time:          bar.Time,
			Code:          code,
			Price:         bar.Price,
			ChangePercent: bar.ChangePercent,
			ChangeAmount:  bar.ChangeAmount,
			Volume:        bar.Volume,
			Amount:        bar.Amount,
		})
	}
	c.JSON(http.StatusOK, api.StockResponse{
		Code:    "200",
		Message: "查询成功",
		Data: gin.H{
			"stock_code":    code,
			"period":        "最近20分钟",
			"total_records": len(rows),
			"stock_data":    rows,
		},
	})
}

// toDailyRow はドメインエンティティをレスポンスDTOに変換します。
func toDailyRow(code string, bar entity.DailyBar) dto.DailyRow {
	return dto.DailyRow{
		Date:          bar.Date,
		Code:          code,
		Open:          bar.Open,
		Close:         bar.Close,
		High:          bar.High,
		Low:           bar.Low,
		Volume:        bar.Volume,
		Amount:        bar.Amount,
		Amplitude:     bar.Amplitude,
		ChangePercent: bar.ChangePercent,
		ChangeAmount:  bar.ChangeAmount,
		Turnover:      bar.Turnover,
	}
}
