// Package bridge serves battery state to hosts that poll it with a HID
// class GET_REPORT instead of reading input reports.
//
// The stock firmware stalls feature reads of the battery report, which
// leaves generic host drivers permanently reporting an empty battery. The
// bridge sits in front of the class setup handler, answers exactly that one
// request from live device state, and passes everything else through
// untouched. It also primes the extended report descriptor at connect time
// so the host's first GET_DESCRIPTOR already sees the battery appendix.
package bridge
