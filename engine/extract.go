package engine

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Sentinels reported when a field cannot be recovered from any schema.
const (
	UnknownVendor = "Unknown Vendor"
	UnknownModel  = "Unknown Model"
)

// ErrUnusable marks output that yielded neither a JSON document nor a
// plausible temperature from the text fallback. The prober retries the
// next device-type hint on this; anything else is a usable result.
var ErrUnusable = errors.New("no usable data in smartctl output")

// HealthInfo is the normalized view of one smartctl response.
type HealthInfo struct {
	Vendor       string
	Model        string
	TemperatureC *int // nil = device did not report a temperature
}

// Extract normalizes raw smartctl output into vendor, model and
// temperature. The ATA, SATA, SCSI and NVMe schemas expose these facts
// under different (sometimes absent) field names, so each one is
// resolved through an ordered lookup chain, first present value wins.
//
// A document that parses but carries none of the known fields is still
// a usable result: it reports sentinel vendor/model and no temperature.
// Extract is pure; identical input always yields identical output.
func Extract(raw []byte) (HealthInfo, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return extractFromText(raw)
	}

	info := HealthInfo{
		Vendor: firstString(doc, vendorLookups),
		Model:  firstString(doc, modelLookups),
	}
	for _, lookup := range temperatureLookups {
		if t, ok := lookup(doc); ok {
			info.TemperatureC = &t
			break
		}
	}
	return info, nil
}

// vendorLookups resolves the vendor, in priority order. SATA disks
// usually carry only model_family ("<Vendor> <Series>"), so its first
// word doubles as the vendor; SCSI uses vendor or scsi_vendor.
var vendorLookups = []func(doc map[string]any) (string, bool){
	func(doc map[string]any) (string, bool) {
		family, ok := asString(doc["model_family"])
		if !ok {
			return "", false
		}
		fields := strings.Fields(family)
		if len(fields) == 0 {
			return "", false
		}
		return fields[0], true
	},
	func(doc map[string]any) (string, bool) { return asString(doc["vendor"]) },
	func(doc map[string]any) (string, bool) { return asString(doc["scsi_vendor"]) },
	func(map[string]any) (string, bool) { return UnknownVendor, true },
}

// modelLookups resolves the model name. SCSI devices report product or
// scsi_product instead of model_name. The last real candidate is the
// model_family remainder: ATA consumer disks often expose no separate
// model field at all, so "<Vendor> <Series>" is split on whitespace and
// everything after the first word is taken as the model. That split is
// a heuristic, not authoritative: multi-word vendor names ("Western
// Digital") split incorrectly, and that is accepted behavior.
var modelLookups = []func(doc map[string]any) (string, bool){
	func(doc map[string]any) (string, bool) { return asString(doc["model_name"]) },
	func(doc map[string]any) (string, bool) { return asString(doc["product"]) },
	func(doc map[string]any) (string, bool) { return asString(doc["scsi_product"]) },
	func(doc map[string]any) (string, bool) { return asString(doc["scsi_model_name"]) },
	func(doc map[string]any) (string, bool) {
		family, ok := asString(doc["model_family"])
		if !ok {
			return "", false
		}
		fields := strings.Fields(family)
		if len(fields) < 2 {
			return "", false
		}
		return strings.Join(fields[1:], " "), true
	},
	func(map[string]any) (string, bool) { return UnknownModel, true },
}

// temperatureLookups resolves the current temperature. Modern smartctl
// reports temperature.current regardless of device type; the remaining
// entries cover older flat fields, the NVMe health log, a scan of the
// ATA attribute table and a SATA-specific flat field.
var temperatureLookups = []func(doc map[string]any) (int, bool){
	func(doc map[string]any) (int, bool) { return asInt(dig(doc, "temperature", "current")) },
	func(doc map[string]any) (int, bool) { return asInt(doc["temperature"]) },
	func(doc map[string]any) (int, bool) {
		return asInt(dig(doc, "nvme_smart_health_information_log", "temperature"))
	},
	attributeTableTemperature,
	func(doc map[string]any) (int, bool) { return asInt(doc["sata_temperature"]) },
}

// attributeTableTemperature scans ata_smart_attributes.table for the
// first attribute whose name contains "temp" (case-insensitive, which
// covers Temperature_Celsius and Airflow_Temperature_Cel alike) and
// yields a numeric raw value, falling back to the normalized value.
func attributeTableTemperature(doc map[string]any) (int, bool) {
	table, ok := dig(doc, "ata_smart_attributes", "table").([]any)
	if !ok {
		return 0, false
	}
	for _, entry := range table {
		attr, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, ok := asString(attr["name"])
		if !ok || !strings.Contains(strings.ToLower(name), "temp") {
			continue
		}
		if t, ok := asInt(dig(attr, "raw", "value")); ok {
			return t, true
		}
		if t, ok := asInt(attr["value"]); ok {
			return t, true
		}
	}
	return 0, false
}

// extractFromText is the fallback for non-JSON output (old smartctl
// builds, or partial dumps from devices the JSON formatter chokes on).
// It scans for a line mentioning a temperature and takes the first
// whitespace token that parses as a plausible Celsius reading. Vendor
// and model are unrecoverable from free text.
func extractFromText(raw []byte) (HealthInfo, error) {
	for _, line := range strings.Split(string(raw), "\n") {
		if !strings.Contains(strings.ToLower(line), "temp") {
			continue
		}
		for _, token := range strings.Fields(line) {
			t, err := strconv.Atoi(token)
			if err != nil || t <= 0 || t >= 150 {
				continue
			}
			return HealthInfo{Vendor: UnknownVendor, Model: UnknownModel, TemperatureC: &t}, nil
		}
	}
	return HealthInfo{}, ErrUnusable
}

func firstString(doc map[string]any, lookups []func(map[string]any) (string, bool)) string {
	for _, lookup := range lookups {
		if s, ok := lookup(doc); ok {
			return s
		}
	}
	return ""
}

// dig walks nested JSON objects; returns nil if any step is missing or
// not an object.
func dig(doc map[string]any, keys ...string) any {
	var v any = doc
	for _, key := range keys {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[key]
	}
	return v
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int, bool) {
	// encoding/json decodes all numbers into float64.
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}
