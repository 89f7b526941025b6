package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostdiag/disktemp/logger"
)

// Runner executes one smartctl invocation. deviceType is the -d hint;
// empty means auto-detect. Implementations must treat non-zero exit
// with output as success: the output is what gets judged.
type Runner interface {
	Run(ctx context.Context, device, deviceType string) ([]byte, error)
}

// Prober queries a single device, walking the device-type hint list
// until one invocation produces usable output.
type Prober struct {
	runner      Runner
	deviceTypes []string
	timeout     time.Duration
	log         zerolog.Logger
}

// NewProber builds a prober over the given hint order. The hint list
// is injected rather than hardwired so tests can run synthetic orders.
func NewProber(runner Runner, deviceTypes []string, timeout time.Duration) *Prober {
	return &Prober{
		runner:      runner,
		deviceTypes: deviceTypes,
		timeout:     timeout,
		log:         logger.WithComponent("prober"),
	}
}

// Probe tries each device-type hint in order and returns the first
// usable extraction. A failed invocation (non-zero exit with no output,
// spawn error, timeout) counts the same as unusable output: move on to
// the next hint. Hints after the winning one are never attempted, so
// the hint order decides which schema's vendor/model is reported when
// several would succeed. That ambiguity is inherent to the retry
// scheme, not a bug.
func (p *Prober) Probe(ctx context.Context, device string) (HealthInfo, error) {
	for _, deviceType := range p.deviceTypes {
		attemptCtx, cancel := context.WithTimeout(ctx, p.timeout)
		out, err := p.runner.Run(attemptCtx, device, deviceType)
		cancel()
		if err != nil {
			p.log.Debug().Str("device", device).Str("type", deviceType).
				Err(err).Msg("attempt failed")
			continue
		}

		info, err := Extract(out)
		if err != nil {
			p.log.Debug().Str("device", device).Str("type", deviceType).
				Msg("output unusable")
			continue
		}
		p.log.Debug().Str("device", device).Str("type", deviceType).
			Str("vendor", info.Vendor).Str("model", info.Model).
			Msg("probe succeeded")
		return info, nil
	}
	return HealthInfo{}, fmt.Errorf("no usable smartctl output for %s after trying all device types", device)
}
