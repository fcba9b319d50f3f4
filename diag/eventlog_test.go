package diag

import (
	"bytes"
	"testing"
)

func TestEventLogAppend(t *testing.T) {
	var l EventLog

	l.Append(EventConnect, nil)
	if got := l.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
	if got := l.Head(); got != 1 {
		t.Errorf("Head() = %d, want 1", got)
	}

	l.Append(EventSetupResult, []byte{1, 87})
	if got := l.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}

	var page [EventPageSize]byte
	if n := l.ReadPage(0, page[:]); n != EventPageSize {
		t.Fatalf("ReadPage() = %d, want %d", n, EventPageSize)
	}
	want := []byte{EventConnect, EventSetupResult, 1, 87}
	if !bytes.Equal(page[:4], want) {
		t.Errorf("page prefix = %x, want %x", page[:4], want)
	}
}

func TestEventLogCountSaturates(t *testing.T) {
	var l EventLog

	// 9-byte records: 57 of them overfill the 512-byte ring.
	payload := make([]byte, 8)
	for i := 0; i < 57; i++ {
		l.Append(EventSetup, payload)
	}

	if got := l.Count(); got != EventLogSize {
		t.Errorf("Count() = %d, want saturated %d", got, EventLogSize)
	}
	if got := l.Head(); got != 57*9%EventLogSize {
		t.Errorf("Head() = %d, want %d", got, 57*9%EventLogSize)
	}

	// Still saturated after more appends.
	l.Append(EventConnect, nil)
	if got := l.Count(); got != EventLogSize {
		t.Errorf("Count() after wrap = %d, want %d", got, EventLogSize)
	}
}

func TestEventLogWrapOverwritesOldest(t *testing.T) {
	var l EventLog

	payload := make([]byte, 8)
	for i := range payload {
		payload[i] = 0xAA
	}
	// 56 full records = 504 bytes; the 57th wraps into offset 0.
	for i := 0; i < 57; i++ {
		l.Append(EventSetup, payload)
	}

	var page [EventPageSize]byte
	l.ReadPage(0, page[:])
	// 57 nine-byte records are 513 bytes, so the final payload byte wraps
	// into offset 0, over the first record's type byte.
	if page[0] != 0xAA {
		t.Errorf("page[0] = 0x%02x, want wrapped payload byte 0xAA", page[0])
	}
	if got := l.Head(); got != 1 {
		t.Errorf("Head() = %d, want 1", got)
	}
}

func TestEventLogReadPage(t *testing.T) {
	var l EventLog
	// 40 bytes of real data.
	for i := 0; i < 10; i++ {
		l.Append(EventSetupResult, []byte{1, byte(i), 0xEE})
	}

	tests := []struct {
		name     string
		page     uint8
		wantZero int // bytes from the end that must be zero
	}{
		{name: "page 0 real data", page: 0, wantZero: EventPageSize - 40},
		{name: "page 2 unwritten", page: 2, wantZero: EventPageSize},
		{name: "page 9 straddles capacity", page: 9, wantZero: EventPageSize - 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page [EventPageSize]byte
			if n := l.ReadPage(tt.page, page[:]); n != EventPageSize {
				t.Fatalf("ReadPage() = %d, want %d", n, EventPageSize)
			}
			for i := EventPageSize - tt.wantZero; i < EventPageSize; i++ {
				if page[i] != 0 {
					t.Errorf("page[%d] = 0x%02x, want 0", i, page[i])
				}
			}
		})
	}

	// Page 9 covers ring bytes 504..511 plus 48 synthetic zeros that do
	// not wrap back to offset 0.
	l2 := EventLog{}
	filler := make([]byte, 8)
	for i := range filler {
		filler[i] = 0xBB
	}
	for i := 0; i < 57; i++ {
		l2.Append(EventSetup, filler)
	}
	var page [EventPageSize]byte
	l2.ReadPage(9, page[:])
	for i := 8; i < EventPageSize; i++ {
		if page[i] != 0 {
			t.Fatalf("page 9 byte %d = 0x%02x, want zero fill (no wrap)", i, page[i])
		}
	}
}

func TestEventLogReadPageShortBuffer(t *testing.T) {
	var l EventLog
	short := make([]byte, EventPageSize-1)
	if n := l.ReadPage(0, short); n != 0 {
		t.Errorf("ReadPage(short) = %d, want 0", n)
	}
}
