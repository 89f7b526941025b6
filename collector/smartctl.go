package collector

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hostdiag/disktemp/logger"
)

// Smartctl invokes the smartctl diagnostics utility.
type Smartctl struct {
	path string
	log  zerolog.Logger
}

// NewSmartctl resolves the smartctl binary. A missing binary is not
// fatal here: every probe attempt will fail individually and each
// device ends up as a FAIL row, matching the per-device error policy.
func NewSmartctl() *Smartctl {
	s := &Smartctl{path: "smartctl", log: logger.WithComponent("smartctl")}
	if p, err := exec.LookPath("smartctl"); err == nil {
		s.path = p
	}
	return s
}

// Run executes `smartctl --json -a [-d deviceType] device` and returns
// raw stdout. A non-zero exit with output on stdout is not an error:
// smartctl returns non-zero for many non-error reasons and the output
// is still inspected. Only a spawn failure, a killed (timed out)
// process, or empty output yields an error.
func (s *Smartctl) Run(ctx context.Context, device, deviceType string) ([]byte, error) {
	args := []string{"--json", "-a", device}
	if deviceType != "" {
		args = []string{"--json", "-a", "-d", deviceType, device}
	}

	out, err := exec.CommandContext(ctx, s.path, args...).Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			s.log.Debug().
				Str("device", device).
				Str("type", deviceType).
				Str("stderr", strings.TrimSpace(string(ee.Stderr))).
				Msg("smartctl wrote to stderr")
		}
		if len(out) > 0 && ctx.Err() == nil {
			return out, nil
		}
		return nil, fmt.Errorf("smartctl %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}
