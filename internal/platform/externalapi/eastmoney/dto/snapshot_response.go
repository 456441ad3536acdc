package dto

// SnapshotResponse は全市場スナップショット（clist）エンドポイントのレスポンスです。
type SnapshotResponse struct {
	RC   int           `json:"rc"`
	Data *SnapshotData `json:"data"`
}

// SnapshotData はスナップショットレスポンスの本体です。
type SnapshotData struct {
	Total int            `json:"total"`
	Diff  []SnapshotItem `json:"diff"`
}

// SnapshotItem はスナップショットの1銘柄分です。
// フィールド名はEastmoneyのフィールドID（f2=現在値, f3=涨跌幅, f4=涨跌額,
// f5=成交量, f6=成交額, f12=銘柄コード, f14=銘柄名）です。
type SnapshotItem struct {
	Price         Num    `json:"f2"`
	ChangePercent Num    `json:"f3"`
	ChangeAmount  Num    `json:"f4"`
	Volume        Num    `json:"f5"`
	Amount        Num    `json:"f6"`
	Code          string `json:"f12"`
	Name          string `json:"f14"`
}
