// Package domain defines domain-level errors for the watchlist feature.
package domain

import "errors"

// Domain errors for watchlist operations.
// These errors represent expected business outcomes and are mapped to
// envelope codes by the transport layer.
var (
	// ErrSymbolAlreadyExists は既に株票池に登録済みの銘柄を追加しようとした場合に返されます。
	ErrSymbolAlreadyExists = errors.New("symbol already in watchlist")

	// ErrSymbolNotFound は株票池に存在しない銘柄を操作しようとした場合に返されます。
	ErrSymbolNotFound = errors.New("symbol not in watchlist")
)
