package diag

import (
	"github.com/echtzeit-solutions/monsmod/hal"
)

// Sampler publishes a fixed set of telemetry channels on every invocation.
// It is driven on a fixed cadence from the host firmware's own polling loop.
type Sampler struct {
	telemetry *Telemetry
	state     hal.DeviceState
}

// NewSampler creates a sampler publishing the given device state.
func NewSampler(telemetry *Telemetry, state hal.DeviceState) *Sampler {
	return &Sampler{telemetry: telemetry, state: state}
}

// Sample publishes one batch. The averaged ADC channel is always first:
// readers use it as the batch-start marker. Drops within a batch are
// tolerated; the next cadence tick republishes everything.
func (s *Sampler) Sample() {
	var charger uint32
	if s.state.Charging() {
		charger = 1
	}

	s.telemetry.Publish(TagADCAverage, uint32(s.state.ADCAverage()))
	s.telemetry.Publish(TagBatteryRaw, uint32(s.state.RawBatteryLevel()))
	s.telemetry.Publish(TagBatteryLevel, uint32(s.state.BatteryLevel()))
	s.telemetry.Publish(TagCharger, charger)
	s.telemetry.Publish(TagChargerDebounce, uint32(s.state.ChargerDebounce()))
	s.telemetry.Publish(TagScanCount, s.state.ScanCount())
}
