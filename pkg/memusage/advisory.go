package memusage

import "log/slog"

// LogIfAbove writes a warning when the process's resident memory exceeds
// thresholdMB and a debug line otherwise. It reports whether the threshold
// was exceeded. Purely advisory: nothing is enforced or freed.
func LogIfAbove(log *slog.Logger, thresholdMB float64) bool {
	if log == nil {
		log = slog.Default()
	}

	snap, err := Current()
	if err != nil {
		log.Warn("failed to read process memory usage", slog.Any("error", err))
		return false
	}

	attrs := []any{
		slog.Float64("rss_mb", snap.RSSMegabytes()),
		slog.Float64("threshold_mb", thresholdMB),
	}
	if snap.RSSMegabytes() > thresholdMB {
		log.Warn("memory usage above threshold", attrs...)
		return true
	}
	log.Debug("memory usage within threshold", attrs...)
	return false
}
