package usecase

// DefaultStaticNames は主要銘柄の静的な名前テーブルを返します。
// プロセス起動時に一度だけ構築し、NameResolverに注入して以後読み取り専用で使います。
func DefaultStaticNames() map[string]string {
	return map[string]string{
		"000001": "平安银行",
		"000002": "万科A",
		"000333": "美的集团",
		"000651": "格力电器",
		"000858": "五粮液",
		"002594": "比亚迪",
		"300750": "宁德时代",
		"600000": "浦发银行",
		"600036": "招商银行",
		"600519": "贵州茅台",
		"600887": "伊利股份",
		"601318": "中国平安",
		"601398": "工商银行",
		"601857": "中国石油",
		"601988": "中国银行",
		"603288": "海天味业",
	}
}
