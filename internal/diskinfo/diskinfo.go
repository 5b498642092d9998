// Package diskinfo reports free space for the filesystem holding a path.
package diskinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"dirhop/internal/listing"
)

// Stats is the usage of one filesystem
type Stats struct {
	Path        string
	Fstype      string
	Total       uint64
	Free        uint64
	Used        uint64
	UsedPercent float64
}

// Usage returns usage for the filesystem containing path
func Usage(path string) (Stats, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return Stats{}, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return Stats{
		Path:        u.Path,
		Fstype:      u.Fstype,
		Total:       u.Total,
		Free:        u.Free,
		Used:        u.Used,
		UsedPercent: u.UsedPercent,
	}, nil
}

// Partitions lists usage for every mounted physical partition. Mounts whose
// usage cannot be read are skipped.
func Partitions() ([]Stats, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}
	out := make([]Stats, 0, len(parts))
	for _, p := range parts {
		s, err := Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		if s.Fstype == "" {
			s.Fstype = p.Fstype
		}
		out = append(out, s)
	}
	return out, nil
}

// Summary is the short "12.3 GB free of 100.0 GB" form used in the status bar
func (s Stats) Summary() string {
	return fmt.Sprintf("%s free of %s", listing.FormatSize(int64(s.Free)), listing.FormatSize(int64(s.Total)))
}
