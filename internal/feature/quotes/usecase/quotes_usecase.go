package usecase

import (
	"context"
	"time"

	"astock_backend/internal/feature/quotes/domain/entity"
)

const (
	// TrailingDaysWindow は期間クエリの遡及日数（暦日）です。
	TrailingDaysWindow = 30
	// TrailingMinutesWindow は分時クエリが返す直近の行数です。
	TrailingMinutesWindow = 20
)

// MarketRepository は株価データプロバイダを抽象化します。
// 実装は空の結果を空スライスで、失敗をエラーで表現します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// DailyHistory は指定期間（両端を含む）の日足データを取得します。
	DailyHistory(ctx context.Context, symbol string, start, end time.Time) ([]entity.DailyBar, error)
	// MinuteSeries は当日の1分足の分時データを取得します。
	MinuteSeries(ctx context.Context, symbol string) ([]entity.MinuteBar, error)
}

// QuotesUsecase は日足・期間・分時の3種類の株価クエリを提供します。
type QuotesUsecase struct {
	market MarketRepository
	now    func() time.Time
}

// NewQuotesUsecase はQuotesUsecaseの新しいインスタンスを生成します。
func NewQuotesUsecase(market MarketRepository) *QuotesUsecase {
	return &QuotesUsecase{market: market, now: time.Now}
}

// GetDaily は指定日（ゼロ値の場合は当日）の日足データ1件を取得します。
// プロバイダが複数行を返した場合は先頭の1行のみを採用します。
// 該当データがない場合はErrNoDataを返します。
func (u *QuotesUsecase) GetDaily(ctx context.Context, symbol string, date time.Time) (entity.DailyBar, error) {
	if date.IsZero() {
		date = u.now()
	}

	bars, err := u.market.DailyHistory(ctx, symbol, date, date)
	if err != nil {
		return entity.DailyBar{}, err
	}
	if len(bars) == 0 {
		return entity.DailyBar{}, ErrNoData
	}
	return bars[0], nil
}

// GetTrailingDaily は直近30暦日（当日を含む）の日足データを取得します。
// 行はプロバイダが返した順序のまま返します。
// 該当データがない場合はErrNoDataを返します。
func (u *QuotesUsecase) GetTrailingDaily(ctx context.Context, symbol string) (entity.DailyRange, error) {
	end := u.now()
	start := end.AddDate(0, 0, -TrailingDaysWindow)

	bars, err := u.market.DailyHistory(ctx, symbol, start, end)
	if err != nil {
		return entity.DailyRange{}, err
	}
	if len(bars) == 0 {
		return entity.DailyRange{}, ErrNoData
	}
	return entity.DailyRange{Start: start, End: end, Bars: bars}, nil
}

// GetRealtime は当日の分時データの直近20行を取得します。
// 20行未満の場合は全行を返します（パディングしない）。古い行から切り捨てます。
// 該当データがない場合はErrNoDataを返します。
func (u *QuotesUsecase) GetRealtime(ctx context.Context, symbol string) ([]entity.MinuteBar, error) {
	bars, err := u.market.MinuteSeries(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	if len(bars) > TrailingMinutesWindow {
		bars = bars[len(bars)-TrailingMinutesWindow:]
	}
	return bars, nil
}
