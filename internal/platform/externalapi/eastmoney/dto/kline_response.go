package dto

// KlineResponse は日足（kline）エンドポイントのレスポンスです。
// 該当データが存在しない場合、Dataはnullになります。
type KlineResponse struct {
	RC   int        `json:"rc"`
	Data *KlineData `json:"data"`
}

// KlineData は日足レスポンスの本体です。
// Klines の各要素はカンマ区切りの1営業日分のデータで、列順は
// 日付,始値,終値,高値,安値,成交量,成交額,振幅,涨跌幅,涨跌額,換手率 です。
type KlineData struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Klines []string `json:"klines"`
}
