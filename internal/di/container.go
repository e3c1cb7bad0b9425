package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/adapters/eml"
	"github.com/mikey/eml-analyzer/internal/adapters/source"
	"github.com/mikey/eml-analyzer/internal/analyzer"
	"github.com/mikey/eml-analyzer/internal/config"
	"github.com/mikey/eml-analyzer/internal/core"
	"github.com/mikey/eml-analyzer/internal/factory"
	"github.com/mikey/eml-analyzer/internal/logging"
	"github.com/mikey/eml-analyzer/internal/ports"
	"github.com/mikey/eml-analyzer/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		cfg, err := createConfigFromFlags(flags)
		if err != nil {
			return nil, err
		}
		if used := cfg.GetViper().ConfigFileUsed(); used != "" {
			logger.Info("Loaded configuration from file", zap.String("file", used))
		}
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewGeoFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewReportFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register cache repository; nil when caching is disabled
	if err := container.Provide(func(f *factory.CacheFactory) (ports.ManagedCache, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register geolocation provider
	if err := container.Provide(func(f *factory.GeoFactory, cache ports.ManagedCache) (core.GeoLocator, error) {
		return f.CreateLocator(cache)
	}); err != nil {
		return nil, err
	}

	// Register risk model
	if err := container.Provide(func(cfg *config.Config) (*core.RiskModel, error) {
		scoring, err := cfg.GetScoring()
		if err != nil {
			return nil, err
		}
		return core.NewRiskModel(scoring.Weights, scoring.Thresholds), nil
	}); err != nil {
		return nil, err
	}

	// Register message source and extractor
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) core.MessageSource {
		return source.NewDirectory(cfg.GetString("input.dir"), logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(tp *utils.TextProcessor, logger *zap.Logger) core.MessageExtractor {
		return eml.NewExtractor(tp, logger)
	}); err != nil {
		return nil, err
	}

	// Register report writer
	if err := container.Provide(func(f *factory.ReportFactory) core.ReportWriter {
		return f.CreateReportWriter()
	}); err != nil {
		return nil, err
	}

	// Register analysis service
	if err := container.Provide(func(
		cfg *config.Config,
		geo core.GeoLocator,
		risk *core.RiskModel,
		logger *zap.Logger,
	) (*analyzer.Service, error) {
		analysisCfg := cfg.GetAnalysis()
		geoCfg, err := cfg.GetGeo()
		if err != nil {
			return nil, err
		}
		return analyzer.NewService(geo, risk, logger, analyzer.Options{
			HomeCountry:    analysisCfg.HomeCountry,
			URLLengthLimit: analysisCfg.URLLengthLimit,
			LookupTimeout:  geoCfg.Timeout,
		}), nil
	}); err != nil {
		return nil, err
	}

	// Register batch runner
	if err := container.Provide(func(
		src core.MessageSource,
		extractor core.MessageExtractor,
		service *analyzer.Service,
		writer core.ReportWriter,
		logger *zap.Logger,
	) ports.BatchRunner {
		return analyzer.NewBatchService(src, extractor, service, writer, logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
