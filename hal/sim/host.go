package sim

import (
	"github.com/echtzeit-solutions/monsmod/descriptor"
	"github.com/echtzeit-solutions/monsmod/hal"
	"github.com/echtzeit-solutions/monsmod/hook"
	"github.com/echtzeit-solutions/monsmod/pkg"
)

// Patch is the attachment surface a Host drives. The root runtime
// satisfies it.
type Patch interface {
	HandleConnect() hook.Result
	HandleHIDSetup(raw []byte) (hook.Result, error)
	PollVendor() hook.Result
	SampleTelemetry()
	Extension() *descriptor.Extension
}

// commandResponseOffset is where the vendor transport reads the command
// buffer from: the report ID and pending flag are consumed by the transport,
// so the host sees buffer byte N+2 as response byte N, and its payload is
// staged at the same shift.
const commandResponseOffset = 2

// Host replays the firmware's call sites against a patch: control request
// delivery with stock-handler fallback, vendor command staging over
// SET_REPORT, and the main-loop poll. Passthrough requests are served the
// way the stock firmware serves them, including GET_DESCRIPTOR from the
// extended descriptor buffer (or the original one before it is primed).
type Host struct {
	patch   Patch
	store   *Store
	control *ControlPort
	notify  *NotifyPort
}

// NewHost creates a harness over a patch and the peripherals it was
// assembled with.
func NewHost(patch Patch, store *Store, control *ControlPort, notify *NotifyPort) *Host {
	return &Host{
		patch:   patch,
		store:   store,
		control: control,
		notify:  notify,
	}
}

// Connect replays the cable-plug event.
func (h *Host) Connect() hook.Result {
	return h.patch.HandleConnect()
}

// Poll replays one main-loop tick: vendor dispatch then the battery
// monitor's telemetry sample.
func (h *Host) Poll() hook.Result {
	res := h.patch.PollVendor()
	h.patch.SampleTelemetry()
	return res
}

// ControlRequest delivers one control request. For device-to-host requests
// the response bytes are returned; data carries the payload of host-to-device
// requests. Requests neither the patch nor the modeled stock handler
// recognizes fail with pkg.ErrNotSupported, modeling a stall.
func (h *Host) ControlRequest(setup *hal.SetupPacket, data []byte) ([]byte, error) {
	var raw [hal.SetupPacketSize]byte
	setup.MarshalTo(raw[:])

	res, err := h.patch.HandleHIDSetup(raw[:])
	if err != nil {
		return nil, err
	}
	if res == hook.Handled {
		return h.control.Last(), nil
	}
	return h.stockRequest(setup, data)
}

// stockRequest models what the unpatched firmware does with a request the
// patch passed through.
func (h *Host) stockRequest(setup *hal.SetupPacket, data []byte) ([]byte, error) {
	switch {
	case setup.IsStandard() && setup.Request == hal.RequestGetDescriptor &&
		setup.ReportType() == hal.DescriptorTypeReport:
		// The stock handler streams whatever the descriptor pointer
		// addresses. Before the first population that is still the
		// original descriptor, which is exactly the enumeration race.
		desc := h.patch.Extension().Bytes()
		if desc == nil {
			desc = h.store.ReportDescriptor()
		}
		return clamp(desc, setup.Length), nil

	case setup.IsClass() && setup.Request == hal.RequestSetReport:
		// The vendor transport lands the payload shifted into the
		// command buffer and raises the pending flag for the main loop.
		buf := h.store.CommandBuffer()
		copy(buf[commandResponseOffset:], data)
		buf[0] = 1
		return nil, nil

	case setup.IsClass() && setup.Request == hal.RequestGetReport:
		buf := h.store.CommandBuffer()
		return clamp(buf[commandResponseOffset:], setup.Length), nil
	}
	return nil, pkg.ErrNotSupported
}

// ReadDescriptor issues a report descriptor GET_DESCRIPTOR against
// interface 1 with the given wLength.
func (h *Host) ReadDescriptor(length uint16) ([]byte, error) {
	return h.ControlRequest(&hal.SetupPacket{
		RequestType: hal.RequestDirectionDeviceToHost | hal.RequestRecipientInterface,
		Request:     hal.RequestGetDescriptor,
		Value:       uint16(hal.DescriptorTypeReport) << 8,
		Index:       1,
		Length:      length,
	}, nil)
}

// ReadBatteryReport issues the battery feature GET_REPORT with the given
// wLength.
func (h *Host) ReadBatteryReport(length uint16) ([]byte, error) {
	return h.ControlRequest(&hal.SetupPacket{
		RequestType: hal.RequestDirectionDeviceToHost | hal.RequestTypeClass |
			hal.RequestRecipientInterface,
		Request: hal.RequestGetReport,
		Value:   uint16(hal.ReportTypeFeature)<<8 | descriptor.BatteryReportID,
		Index:   1,
		Length:  length,
	}, nil)
}

// SubmitCommand stages a vendor command as the transport would: payload
// shifted into the command buffer and the pending flag raised. payload[0]
// is the selector.
func (h *Host) SubmitCommand(payload []byte) error {
	if len(payload) > CommandBufferSize-commandResponseOffset {
		return pkg.ErrInvalidParameter
	}
	_, err := h.ControlRequest(&hal.SetupPacket{
		RequestType: hal.RequestTypeClass | hal.RequestRecipientInterface,
		Request:     hal.RequestSetReport,
		Value:       uint16(hal.ReportTypeFeature)<<8 | 6,
		Index:       1,
		Length:      uint16(len(payload)),
	}, payload)
	return err
}

// ReadResponse reads back the vendor command response the way the host
// does, shifted by the transport offset.
func (h *Host) ReadResponse(length uint16) ([]byte, error) {
	return h.ControlRequest(&hal.SetupPacket{
		RequestType: hal.RequestDirectionDeviceToHost | hal.RequestTypeClass |
			hal.RequestRecipientInterface,
		Request: hal.RequestGetReport,
		Value:   uint16(hal.ReportTypeFeature)<<8 | 6,
		Index:   1,
		Length:  length,
	}, nil)
}

func clamp(data []byte, length uint16) []byte {
	if int(length) < len(data) {
		return data[:length]
	}
	return data
}
