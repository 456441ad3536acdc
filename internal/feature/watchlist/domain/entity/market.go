package entity

// SnapshotRow は全市場スナップショットの1銘柄分です。
// 数値フィールドは停牌銘柄などで欠損することがあるため、欠損をnilで表現します。
// 欠損をゼロ値に潰すと「現在値0元」と区別できなくなります。
type SnapshotRow struct {
	Code          string   // 銘柄コード
	Name          string   // 銘柄名
	Price         *float64 // 現在値（欠損時はnil）
	ChangePercent *float64 // 涨跌幅（%、欠損時はnil）
	ChangeAmount  *float64 // 涨跌額（元、欠損時はnil）
	Volume        *int64   // 成交量（手、欠損時はnil）
	Amount        *float64 // 成交額（元、欠損時はnil）
}

// DetailField は個別銘柄情報の1行です。
// プロバイダの項目名は自由形式のため、ラベルと値の組として保持します。
type DetailField struct {
	Item  string
	Value string
}
