// Package symbol はA株の銘柄コードのバリデーションを提供します。
package symbol

import "errors"

// ErrInvalidFormat は銘柄コードが数字のみで構成されていない場合に返されます。
var ErrInvalidFormat = errors.New("stock code must be digits only")

// Validate は銘柄コードの形式を検証します。
// A株の銘柄コードはASCII数字のみで構成されます（例: "000001", "600519"）。
// I/Oを伴う処理の前に必ず呼び出します。
func Validate(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidFormat
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", ErrInvalidFormat
		}
	}
	return raw, nil
}
