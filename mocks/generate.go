package mocks

//go:generate mockgen -destination=./mock_indicator.go -package=mocks github.com/rxtech-lab/argo-kline/internal/indicator Indicator
//go:generate mockgen -destination=./mock_indicator_registry.go -package=mocks github.com/rxtech-lab/argo-kline/internal/indicator IndicatorRegistry
//go:generate mockgen -destination=./mock_engine.go -package=mocks github.com/rxtech-lab/argo-kline/internal/engine Engine
