// Package dto はEastmoney push2 APIのレスポンス型を定義します。
package dto

import (
	"strconv"
	"strings"
)

// Num は数値が期待されるJSONフィールドです。
// Eastmoneyは停牌銘柄などで数値の代わりに "-" や null を返すため、
// 解釈できない値は欠損（Valid=false）として扱います。
type Num struct {
	Value float64
	Valid bool
}

// UnmarshalJSON はJSONの数値・数値文字列・欠損センチネルをNumに変換します。
func (n *Num) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" || s == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// 欠損扱い（スキーマが自由形式のためエラーにはしない）
		return nil
	}
	n.Value = v
	n.Valid = true
	return nil
}

// Ptr は値をポインタとして返します。欠損の場合はnilを返します。
func (n Num) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// IntPtr は値をint64に切り捨ててポインタとして返します。欠損の場合はnilを返します。
func (n Num) IntPtr() *int64 {
	if !n.Valid {
		return nil
	}
	v := int64(n.Value)
	return &v
}
