package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hostdiag/disktemp/model"
)

// ProbeAll probes every device through a bounded worker pool and
// returns one record per device, in discovery order. Devices are
// independent: a failure on one never aborts or delays the others,
// and each worker writes only its own slot in the result slice.
func ProbeAll(ctx context.Context, prober *Prober, devices []string, concurrency int) []model.DeviceRecord {
	if concurrency < 1 {
		concurrency = 1
	}

	records := make([]model.DeviceRecord, len(devices))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, device := range devices {
		i, device := i, device
		g.Go(func() error {
			records[i] = probeOne(ctx, prober, device)
			return nil
		})
	}
	_ = g.Wait()

	return records
}

func probeOne(ctx context.Context, prober *Prober, device string) model.DeviceRecord {
	info, err := prober.Probe(ctx, device)
	if err != nil {
		return model.DeviceRecord{
			Path:   device,
			Status: model.StatusFailed,
			Err:    err.Error(),
		}
	}
	return model.DeviceRecord{
		Path:         device,
		Vendor:       info.Vendor,
		Model:        info.Model,
		TemperatureC: info.TemperatureC,
		Status:       model.StatusOK,
	}
}
