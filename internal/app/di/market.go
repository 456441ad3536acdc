// Package di provides dependency injection factories for creating application components.
package di

import (
	"astock_backend/internal/platform/externalapi/eastmoney"
	infrahttp "astock_backend/internal/platform/http"
)

// NewMarket creates a fully configured EastmoneyMarket with HTTP client.
func NewMarket() *eastmoney.EastmoneyMarket {
	cfg := eastmoney.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return eastmoney.NewEastmoneyMarket(cfg, httpClient)
}
