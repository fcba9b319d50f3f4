package sim

import "github.com/echtzeit-solutions/monsmod/hal"

// State is a scriptable hal.DeviceState. Tests and harness drivers set the
// fields directly between calls into the runtime.
type State struct {
	Battery     uint8
	IsCharging  bool
	RawBattery  uint8
	Debounce    uint8
	UpdateCount uint8
	Indicator   bool
	ADCAvg      uint16
	Scans       uint32
}

var _ hal.DeviceState = (*State)(nil)

func (s *State) BatteryLevel() uint8       { return s.Battery }
func (s *State) Charging() bool            { return s.IsCharging }
func (s *State) RawBatteryLevel() uint8    { return s.RawBattery }
func (s *State) ChargerDebounce() uint8    { return s.Debounce }
func (s *State) BatteryUpdateCount() uint8 { return s.UpdateCount }
func (s *State) IndicatorActive() bool     { return s.Indicator }
func (s *State) ADCAverage() uint16        { return s.ADCAvg }
func (s *State) ScanCount() uint32         { return s.Scans }
