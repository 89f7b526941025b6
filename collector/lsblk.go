package collector

import (
	"fmt"
	"os/exec"
	"strings"
)

// ListBlockDevices enumerates whole-disk block devices via lsblk and
// returns their device node paths in listing order. Paths matching one
// of the exclude prefixes (zvols, floppy nodes, ...) are dropped.
//
// lsblk being unavailable or failing is fatal for the run: with no
// device list there is nothing to report.
func ListBlockDevices(exclude []string) ([]string, error) {
	path, err := exec.LookPath("lsblk")
	if err != nil {
		return nil, fmt.Errorf("lsblk not found in PATH: %w", err)
	}

	out, err := exec.Command(path, "-d", "-o", "NAME,TYPE", "-n", "-l").Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("lsblk failed: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("lsblk failed: %w", err)
	}

	return parseLsblkOutput(string(out), exclude), nil
}

// parseLsblkOutput keeps "disk" rows from headerless one-line-per-device
// lsblk output and builds /dev/<name> paths.
func parseLsblkOutput(out string, exclude []string) []string {
	var devices []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[1] != "disk" {
			continue
		}
		devicePath := "/dev/" + fields[0]
		if hasAnyPrefix(devicePath, exclude) {
			continue
		}
		devices = append(devices, devicePath)
	}
	return devices
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
