package model

// Status classifies the outcome of probing one device.
type Status string

const (
	StatusOK     Status = "OK"
	StatusFailed Status = "FAIL"
)

// DeviceRecord holds the normalized result for a single disk.
// One record exists per device path returned by the lister; it is
// populated once by the prober and read-only afterwards.
type DeviceRecord struct {
	// Path is the device node, e.g. "/dev/sda" or "/dev/nvme0n1".
	Path string `json:"path"`

	// Vendor and Model carry the "Unknown Vendor" / "Unknown Model"
	// sentinels when the device's schema exposes neither.
	Vendor string `json:"vendor,omitempty"`
	Model  string `json:"model,omitempty"`

	// TemperatureC is nil when the device reported no temperature,
	// which is a valid outcome, not a failure.
	TemperatureC *int `json:"temperature_celsius,omitempty"`

	Status Status `json:"status"`

	// Err holds the diagnostic message for FAIL records.
	Err string `json:"error,omitempty"`
}
