package config

import "time"

// Config holds the probing constants. Everything here is injectable so
// tests can run against synthetic device sets and schemas; the tool
// itself reads no config files and no environment variables.
type Config struct {
	// DeviceTypes is the ordered list of smartctl -d hints. The empty
	// string means "no hint" (smartctl auto-detect) and must come first:
	// probing stops at the first hint that yields usable output, so the
	// order decides which schema wins when several would succeed.
	DeviceTypes []string

	// ExcludePrefixes drops non-physical device nodes from the lsblk
	// listing (zvols, floppy nodes).
	ExcludePrefixes []string

	// ProbeTimeout bounds a single smartctl invocation. smartctl is
	// known to hang on some device classes, so every attempt runs under
	// its own deadline.
	ProbeTimeout time.Duration

	// Concurrency caps the number of devices probed in parallel, to
	// avoid flooding the disk subsystem with simultaneous I/O probes.
	Concurrency int
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		DeviceTypes:     []string{"", "ata", "sat", "scsi", "nvme", "sata"},
		ExcludePrefixes: []string{"/dev/zd", "/dev/fd"},
		ProbeTimeout:    30 * time.Second,
		Concurrency:     4,
	}
}
