package sim

// stockReportDescriptor is the stock interface 1 report descriptor: the
// keyboard's non-boot interface carrying consumer control, system control,
// mouse, and the vendor configuration channel. 171 bytes, so extending it
// with the 46-byte battery appendix yields the canonical 217.
var stockReportDescriptor = [171]byte{
	// Consumer control, report ID 1
	0x05, 0x0C, //       Usage Page (Consumer)
	0x09, 0x01, //       Usage (Consumer Control)
	0xA1, 0x01, //       Collection (Application)
	0x85, 0x01, //         Report ID (1)
	0x15, 0x00, //         Logical Minimum (0)
	0x26, 0xFF, 0x03, //   Logical Maximum (1023)
	0x19, 0x00, //         Usage Minimum (0)
	0x2A, 0xFF, 0x03, //   Usage Maximum (1023)
	0x75, 0x10, //         Report Size (16)
	0x95, 0x01, //         Report Count (1)
	0x81, 0x00, //         Input (Data,Array)
	0xC0, //             End Collection

	// System control, report ID 2
	0x05, 0x01, //       Usage Page (Generic Desktop)
	0x09, 0x80, //       Usage (System Control)
	0xA1, 0x01, //       Collection (Application)
	0x85, 0x02, //         Report ID (2)
	0x15, 0x01, //         Logical Minimum (1)
	0x25, 0x03, //         Logical Maximum (3)
	0x19, 0x81, //         Usage Minimum (System Power Down)
	0x29, 0x83, //         Usage Maximum (System Wake Up)
	0x75, 0x02, //         Report Size (2)
	0x95, 0x01, //         Report Count (1)
	0x81, 0x00, //         Input (Data,Array)
	0x75, 0x06, //         Report Size (6)
	0x95, 0x01, //         Report Count (1)
	0x81, 0x03, //         Input (Const,Var)
	0xC0, //             End Collection

	// Mouse, report ID 3
	0x05, 0x01, //       Usage Page (Generic Desktop)
	0x09, 0x02, //       Usage (Mouse)
	0xA1, 0x01, //       Collection (Application)
	0x85, 0x03, //         Report ID (3)
	0x09, 0x01, //         Usage (Pointer)
	0xA1, 0x00, //         Collection (Physical)
	0x05, 0x09, //           Usage Page (Button)
	0x19, 0x01, //           Usage Minimum (1)
	0x29, 0x05, //           Usage Maximum (5)
	0x15, 0x00, //           Logical Minimum (0)
	0x25, 0x01, //           Logical Maximum (1)
	0x75, 0x01, //           Report Size (1)
	0x95, 0x05, //           Report Count (5)
	0x81, 0x02, //           Input (Data,Var,Abs)
	0x75, 0x03, //           Report Size (3)
	0x95, 0x01, //           Report Count (1)
	0x81, 0x01, //           Input (Const)
	0x05, 0x01, //           Usage Page (Generic Desktop)
	0x09, 0x30, //           Usage (X)
	0x09, 0x31, //           Usage (Y)
	0x16, 0x01, 0x80, //     Logical Minimum (-32767)
	0x26, 0xFF, 0x7F, //     Logical Maximum (32767)
	0x75, 0x10, //           Report Size (16)
	0x95, 0x02, //           Report Count (2)
	0x81, 0x06, //           Input (Data,Var,Rel)
	0x09, 0x38, //           Usage (Wheel)
	0x15, 0x81, //           Logical Minimum (-127)
	0x25, 0x7F, //           Logical Maximum (127)
	0x75, 0x08, //           Report Size (8)
	0x95, 0x01, //           Report Count (1)
	0x81, 0x06, //           Input (Data,Var,Rel)
	0x05, 0x0C, //           Usage Page (Consumer)
	0x0A, 0x38, 0x02, //     Usage (AC Pan)
	0x81, 0x06, //           Input (Data,Var,Rel)
	0xC0, //               End Collection
	0xC0, //             End Collection

	// Vendor configuration channel, report ID 6
	0x06, 0x00, 0xFF, // Usage Page (Vendor)
	0x09, 0x01, //       Usage (1)
	0xA1, 0x01, //       Collection (Application)
	0x85, 0x06, //         Report ID (6)
	0x15, 0x00, //         Logical Minimum (0)
	0x26, 0xFF, 0x00, //   Logical Maximum (255)
	0x75, 0x08, //         Report Size (8)
	0x95, 0x3F, //         Report Count (63)
	0x09, 0x01, //         Usage (1)
	0xB1, 0x02, //         Feature (Data,Var,Abs)
	0x09, 0x02, //         Usage (2)
	0x91, 0x02, //         Output (Data,Var,Abs)
	0x09, 0x03, //         Usage (3)
	0x81, 0x02, //         Input (Data,Var,Abs)
	0xC0, //             End Collection

	// Vendor event channel, report ID 5
	0x09, 0x02, //       Usage (2)
	0xA1, 0x01, //       Collection (Application)
	0x85, 0x05, //         Report ID (5)
	0x95, 0x1F, //         Report Count (31)
	0x09, 0x04, //         Usage (4)
	0x81, 0x02, //         Input (Data,Var,Abs)
	0xC0, //             End Collection
}

// StockDescriptorLength is the stock descriptor size before extension.
const StockDescriptorLength = len(stockReportDescriptor)
