package descriptor

// BatteryReportID is the report identifier shared by the battery Feature and
// Input reports. The HID spec allows the same ID across report types.
const BatteryReportID = 7

// BatteryReportLength is the length of the battery report:
// [ID, level 0-100, charging 0/1].
const BatteryReportLength = 3

// BatteryReportDescriptor is the report descriptor appendix spliced after
// the firmware's original interface descriptor.
//
// It declares battery strength and charging status both as Feature reports
// (polled via GET_REPORT, which triggers power-supply creation in a generic
// host input stack) and as Input reports (pushed on the interrupt endpoint).
// The duplicate usages are deliberate: a host stack's charge-status logic
// reacts only to input-style reports, never to polled feature reads, so
// without the Input declarations charge status would never update.
var BatteryReportDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x06, // Usage (Keyboard)
	0xA1, 0x01, // Collection (Application)
	0x85, BatteryReportID, //   Report ID (7)
	//   Battery capacity (0-100%)
	0x05, 0x06, //   Usage Page (Generic Device Controls)
	0x09, 0x20, //   Usage (Battery Strength)
	0x15, 0x00, //   Logical Minimum (0)
	0x26, 0x64, 0x00, //   Logical Maximum (100)
	0x75, 0x08, //   Report Size (8)
	0x95, 0x01, //   Report Count (1)
	0xB1, 0x02, //   Feature (Data, Variable, Absolute)
	0x09, 0x20, //   Usage (Battery Strength)
	0x81, 0x02, //   Input (Data, Variable, Absolute)
	//   Charging status (0/1)
	0x05, 0x85, //   Usage Page (Battery System)
	0x09, 0x44, //   Usage (Charging)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x01, //   Logical Maximum (1)
	0x75, 0x08, //   Report Size (8)
	0x95, 0x01, //   Report Count (1)
	0xB1, 0x02, //   Feature (Data, Variable, Absolute)
	0x09, 0x44, //   Usage (Charging)
	0x81, 0x02, //   Input (Data, Variable, Absolute)
	0xC0, // End Collection
}
