package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	qentity "astock_backend/internal/feature/quotes/domain/entity"
	quotesusecase "astock_backend/internal/feature/quotes/usecase"
	wentity "astock_backend/internal/feature/watchlist/domain/entity"
	watchlistusecase "astock_backend/internal/feature/watchlist/usecase"
	"astock_backend/internal/platform/externalapi/eastmoney/dto"
)

// EastmoneyMarket はEastmoney push2 APIから株価データを取得するクライアントです。
// 日足履歴・分時・全市場スナップショット・個別銘柄情報の4種類のクエリを提供します。
type EastmoneyMarket struct {
	cfg    Config
	client *http.Client
}

// EastmoneyMarketが各リポジトリインターフェースを実装していることをコンパイル時に検証します。
var (
	_ quotesusecase.MarketRepository      = (*EastmoneyMarket)(nil)
	_ watchlistusecase.SnapshotRepository = (*EastmoneyMarket)(nil)
	_ watchlistusecase.DetailRepository   = (*EastmoneyMarket)(nil)
)

// NewEastmoneyMarket は指定された設定とHTTPクライアントでEastmoneyMarketの新しいインスタンスを生成します。
func NewEastmoneyMarket(cfg Config, client *http.Client) *EastmoneyMarket {
	return &EastmoneyMarket{cfg: cfg, client: client}
}

// secID は銘柄コードをEastmoneyのsecid形式に変換します。
// "6"で始まるコードは上海市場（プレフィックス1）、それ以外は深圳市場（プレフィックス0）です。
func secID(symbol string) string {
	if strings.HasPrefix(symbol, "6") {
		return "1." + symbol
	}
	return "0." + symbol
}

// getJSON はGETリクエストを実行し、JSONレスポンスをoutにデコードします。
func (m *EastmoneyMarket) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("eastmoney http %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// DailyHistory は指定期間の日足データ（前復権）を取得します。
// 該当データが存在しない場合は空のスライスを返します（エラーではありません）。
func (m *EastmoneyMarket) DailyHistory(ctx context.Context, symbol string, start, end time.Time) ([]qentity.DailyBar, error) {
	q := url.Values{}
	q.Set("secid", secID(symbol))
	q.Set("klt", "101") // 日足
	q.Set("fqt", "1")   // 前復権
	q.Set("beg", start.Format("20060102"))
	q.Set("end", end.Format("20060102"))
	q.Set("fields1", "f1,f2,f3,f4,f5,f6")
	q.Set("fields2", "f51,f52,f53,f54,f55,f56,f57,f58,f59,f60,f61")

	u := fmt.Sprintf("%s/api/qt/stock/kline/get?%s", m.cfg.HistBaseURL, q.Encode())

	var body dto.KlineResponse
	if err := m.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return []qentity.DailyBar{}, nil
	}

	bars := make([]qentity.DailyBar, 0, len(body.Data.Klines))
	for _, line := range body.Data.Klines {
		bar, err := parseKline(line)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// parseKline はカンマ区切りの日足1行をDailyBarに変換します。
// 列順: 日付,始値,終値,高値,安値,成交量,成交額,振幅,涨跌幅,涨跌額,換手率
func parseKline(line string) (qentity.DailyBar, error) {
	f := strings.Split(line, ",")
	if len(f) < 11 {
		return qentity.DailyBar{}, fmt.Errorf("kline %q: expected 11 fields, got %d", line, len(f))
	}

	var (
		bar qentity.DailyBar
		err error
	)
	bar.Date = f[0]
	if bar.Open, err = strconv.ParseFloat(f[1], 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse open %q: %w", f[1], err)
	}
	if bar.Close, err = strconv.ParseFloat(f[2], 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse close %q: %w", f[2], err)
	}
	if bar.High, err = strconv.ParseFloat(f[3], 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse high %q: %w", f[3], err)
	}
	if bar.Low, err = strconv.ParseFloat(f[4], 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse low %q: %w", f[4], err)
	}
	if bar.Volume, err = strconv.ParseInt(f[5], 10, 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse volume %q: %w", f[5], err)
	}
	if bar.Amount, err = strconv.ParseFloat(f[6], 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse amount %q: %w", f[6], err)
	}
	if bar.Amplitude, err = strconv.ParseFloat(f[7], 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse amplitude %q: %w", f[7], err)
	}
	if bar.ChangePercent, err = strconv.ParseFloat(f[8], 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse change percent %q: %w", f[8], err)
	}
	if bar.ChangeAmount, err = strconv.ParseFloat(f[9], 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse change amount %q: %w", f[9], err)
	}
	if bar.Turnover, err = strconv.ParseFloat(f[10], 64); err != nil {
		return qentity.DailyBar{}, fmt.Errorf("parse turnover %q: %w", f[10], err)
	}
	return bar, nil
}

// MinuteSeries は当日の1分足の分時データ（前復権）を取得します。
// 涨跌幅・涨跌額は前日終値を基準に算出します。
// 該当データが存在しない場合は空のスライスを返します。
func (m *EastmoneyMarket) MinuteSeries(ctx context.Context, symbol string) ([]qentity.MinuteBar, error) {
	q := url.Values{}
	q.Set("secid", secID(symbol))
	q.Set("ndays", "1")
	q.Set("iscr", "0")
	q.Set("fields1", "f1,f2,f3,f8")
	q.Set("fields2", "f51,f52,f53,f54,f55,f56,f57,f58")

	u := fmt.Sprintf("%s/api/qt/stock/trends2/get?%s", m.cfg.BaseURL, q.Encode())

	var body dto.TrendsResponse
	if err := m.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return []qentity.MinuteBar{}, nil
	}

	bars := make([]qentity.MinuteBar, 0, len(body.Data.Trends))
	for _, line := range body.Data.Trends {
		bar, err := parseTrend(line, body.Data.PrePrice)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// parseTrend はカンマ区切りの分時1行をMinuteBarに変換します。
// 列順: 時刻,始値,終値,高値,安値,成交量,成交額,平均価格
func parseTrend(line string, prePrice float64) (qentity.MinuteBar, error) {
	f := strings.Split(line, ",")
	if len(f) < 7 {
		return qentity.MinuteBar{}, fmt.Errorf("trend %q: expected 7 fields, got %d", line, len(f))
	}

	var (
		bar qentity.MinuteBar
		err error
	)
	bar.Time = f[0]
	if bar.Price, err = strconv.ParseFloat(f[2], 64); err != nil {
		return qentity.MinuteBar{}, fmt.Errorf("parse price %q: %w", f[2], err)
	}
	if bar.Volume, err = strconv.ParseInt(f[5], 10, 64); err != nil {
		return qentity.MinuteBar{}, fmt.Errorf("parse volume %q: %w", f[5], err)
	}
	if bar.Amount, err = strconv.ParseFloat(f[6], 64); err != nil {
		return qentity.MinuteBar{}, fmt.Errorf("parse amount %q: %w", f[6], err)
	}
	if prePrice > 0 {
		bar.ChangeAmount = round2(bar.Price - prePrice)
		bar.ChangePercent = round2((bar.Price - prePrice) / prePrice * 100)
	}
	return bar, nil
}

// round2 は小数点以下2桁に丸めます。
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Snapshot は全A株の現在値スナップショットを取得します。
// 該当データが存在しない場合は空のスライスを返します。
func (m *EastmoneyMarket) Snapshot(ctx context.Context) ([]wentity.SnapshotRow, error) {
	q := url.Values{}
	q.Set("pn", "1")
	q.Set("pz", "6000") // 全銘柄を1ページで取得
	q.Set("po", "1")
	q.Set("np", "1")
	q.Set("fltt", "2")
	q.Set("invt", "2")
	q.Set("fid", "f3")
	q.Set("fs", "m:0 t:6,m:0 t:80,m:1 t:2,m:1 t:23") // 深圳主板・創業板・上海主板・科創板
	q.Set("fields", "f2,f3,f4,f5,f6,f12,f14")

	u := fmt.Sprintf("%s/api/qt/clist/get?%s", m.cfg.BaseURL, q.Encode())

	var body dto.SnapshotResponse
	if err := m.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return []wentity.SnapshotRow{}, nil
	}

	rows := make([]wentity.SnapshotRow, 0, len(body.Data.Diff))
	for _, item := range body.Data.Diff {
		if item.Code == "" {
			continue
		}
		// 欠損フィールド（停牌銘柄の "-" など）はnilのまま伝播する
		rows = append(rows, wentity.SnapshotRow{
			Code:          item.Code,
			Name:          item.Name,
			Price:         item.Price.Ptr(),
			ChangePercent: item.ChangePercent.Ptr(),
			ChangeAmount:  item.ChangeAmount.Ptr(),
			Volume:        item.Volume.IntPtr(),
			Amount:        item.Amount.Ptr(),
		})
	}
	return rows, nil
}

// detailFields はDetailが返す項目の定義です（フィールドID → 表示ラベル、この順で返却）。
var detailFields = []struct {
	id    string
	label string
}{
	{"f57", "股票代码"},
	{"f58", "股票简称"},
	{"f127", "行业"},
	{"f189", "上市时间"},
	{"f84", "总股本"},
	{"f85", "流通股"},
	{"f116", "总市值"},
	{"f117", "流通市值"},
}

// Detail は個別銘柄の基本情報を項目名と値の組のリストとして取得します。
// 該当データが存在しない場合は空のスライスを返します。
func (m *EastmoneyMarket) Detail(ctx context.Context, symbol string) ([]wentity.DetailField, error) {
	q := url.Values{}
	q.Set("secid", secID(symbol))
	fields := make([]string, 0, len(detailFields))
	for _, df := range detailFields {
		fields = append(fields, df.id)
	}
	q.Set("fields", strings.Join(fields, ","))

	u := fmt.Sprintf("%s/api/qt/stock/get?%s", m.cfg.BaseURL, q.Encode())

	var body dto.DetailResponse
	if err := m.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if len(body.Data) == 0 {
		return []wentity.DetailField{}, nil
	}

	out := make([]wentity.DetailField, 0, len(detailFields))
	for _, df := range detailFields {
		raw, ok := body.Data[df.id]
		if !ok {
			continue
		}
		out = append(out, wentity.DetailField{Item: df.label, Value: rawToString(raw)})
	}
	return out, nil
}

// rawToString はJSONの生の値を表示用文字列に変換します。
func rawToString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
