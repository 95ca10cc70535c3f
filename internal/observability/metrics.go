package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gfxlens_parse_seconds",
		Help:    "Time spent parsing a single definition file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	AssetScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gfxlens_asset_scan_seconds",
		Help:    "Time spent building the asset-definition table.",
		Buckets: prometheus.DefBuckets,
	})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gfxlens_analysis_seconds",
		Help:    "Time spent on one usage-analysis run.",
		Buckets: prometheus.DefBuckets,
	})

	CorpusFilesScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gfxlens_corpus_files_scanned_total",
		Help: "Total number of corpus files scanned for references.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gfxlens_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	DefinedAssets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gfxlens_defined_assets",
		Help: "Number of asset identifiers in the definition table.",
	})

	OrphanedAssets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gfxlens_orphaned_assets",
		Help: "Assets defined but never referenced, after reconciliation.",
	})

	MissingAssets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gfxlens_missing_assets",
		Help: "Assets referenced but never defined.",
	})

	DuplicateAssets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gfxlens_duplicate_assets",
		Help: "Asset names with more than one definition.",
	})
)
