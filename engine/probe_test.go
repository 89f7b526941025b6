package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRunner replays canned output per device-type hint and logs
// the order in which hints were attempted.
type scriptedRunner struct {
	outputs     map[string][]byte
	errs        map[string]error
	attempts    []string
	sawDeadline bool
}

func (r *scriptedRunner) Run(ctx context.Context, _, deviceType string) ([]byte, error) {
	r.attempts = append(r.attempts, deviceType)
	if _, ok := ctx.Deadline(); ok {
		r.sawDeadline = true
	}
	if err, ok := r.errs[deviceType]; ok {
		return nil, err
	}
	return r.outputs[deviceType], nil
}

var testDeviceTypes = []string{"", "ata", "sat", "scsi", "nvme", "sata"}

func TestProbeFirstHintWins(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string][]byte{
		"": []byte(`{"model_name":"ST4000DM004","temperature":{"current":33}}`),
	}}
	p := NewProber(runner, testDeviceTypes, time.Second)

	info, err := p.Probe(context.Background(), "/dev/sda")
	require.NoError(t, err)
	assert.Equal(t, "ST4000DM004", info.Model)
	assert.Equal(t, []string{""}, runner.attempts, "later hints must not run after a success")
}

func TestProbeAdvancesToNextHint(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string][]byte{
		"":    []byte("INQUIRY failed"),
		"ata": []byte(`{"model_family":"Seagate BarraCuda","temperature":{"current":36}}`),
		// Would also succeed, but must never be reached.
		"sat": []byte(`{"model_name":"impostor"}`),
	}}
	p := NewProber(runner, testDeviceTypes, time.Second)

	info, err := p.Probe(context.Background(), "/dev/sdb")
	require.NoError(t, err)
	assert.Equal(t, "Seagate", info.Vendor)
	assert.Equal(t, "BarraCuda", info.Model)
	require.NotNil(t, info.TemperatureC)
	assert.Equal(t, 36, *info.TemperatureC)
	assert.Equal(t, []string{"", "ata"}, runner.attempts)
}

func TestProbeRunnerErrorIsNotFatal(t *testing.T) {
	runner := &scriptedRunner{
		errs: map[string]error{"": errors.New("exit status 2")},
		outputs: map[string][]byte{
			"ata": []byte(`{"model_name":"WDC WD40EFRX"}`),
		},
	}
	p := NewProber(runner, testDeviceTypes, time.Second)

	info, err := p.Probe(context.Background(), "/dev/sdc")
	require.NoError(t, err)
	assert.Equal(t, "WDC WD40EFRX", info.Model)
}

func TestProbeExhaustsAllHints(t *testing.T) {
	runner := &scriptedRunner{}
	p := NewProber(runner, testDeviceTypes, time.Second)

	_, err := p.Probe(context.Background(), "/dev/sdd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/dev/sdd")
	assert.Equal(t, testDeviceTypes, runner.attempts, "every hint gets exactly one attempt")
}

func TestProbeAppliesPerAttemptDeadline(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string][]byte{
		"": []byte(`{"temperature":30}`),
	}}
	p := NewProber(runner, testDeviceTypes, time.Second)

	_, err := p.Probe(context.Background(), "/dev/sde")
	require.NoError(t, err)
	assert.True(t, runner.sawDeadline, "each smartctl invocation runs under a deadline")
}

func TestProbeHonorsInjectedHintOrder(t *testing.T) {
	runner := &scriptedRunner{}
	p := NewProber(runner, []string{"nvme", "scsi"}, time.Second)

	_, err := p.Probe(context.Background(), "/dev/nvme0n1")
	require.Error(t, err)
	assert.Equal(t, []string{"nvme", "scsi"}, runner.attempts)
}
