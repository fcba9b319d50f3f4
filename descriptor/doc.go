// Package descriptor synthesizes the extended HID report descriptor (the
// firmware's original interface descriptor plus a battery report appendix)
// and keeps the advertised-length mirrors in every configuration context
// consistent with it.
package descriptor
