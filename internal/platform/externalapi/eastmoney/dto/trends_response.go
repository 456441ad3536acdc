package dto

// TrendsResponse は分時（trends2）エンドポイントのレスポンスです。
// 該当データが存在しない場合、Dataはnullになります。
type TrendsResponse struct {
	RC   int         `json:"rc"`
	Data *TrendsData `json:"data"`
}

// TrendsData は分時レスポンスの本体です。
// Trends の各要素はカンマ区切りの1分分のデータで、列順は
// 時刻,始値,終値,高値,安値,成交量,成交額,平均価格 です。
// PrePrice は前日終値で、涨跌幅・涨跌額の計算基準になります。
type TrendsData struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	PrePrice float64  `json:"prePrice"`
	Trends   []string `json:"trends"`
}
