package memusage

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

const bytesPerMegabyte = 1024 * 1024

// Snapshot captures the memory footprint of the current process in bytes.
type Snapshot struct {
	// RSS is resident set size, the portion held in RAM.
	RSS uint64
	// VMS is total virtual memory size.
	VMS uint64
}

// RSSMegabytes returns the resident set size in megabytes.
func (s Snapshot) RSSMegabytes() float64 {
	return float64(s.RSS) / bytesPerMegabyte
}

// Current reads the memory footprint of the running process.
func Current() (Snapshot, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return Snapshot{}, err
	}
	info, err := p.MemoryInfo()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{RSS: info.RSS, VMS: info.VMS}, nil
}
