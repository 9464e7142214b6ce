package encoding

import (
	"bytes"
	"testing"
)

func TestFixed32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 255, 256, 0xDEADBEEF, 0xFFFFFFFF}

	for _, v := range values {
		buf := make([]byte, 4)
		EncodeFixed32(buf, v)
		if got := DecodeFixed32(buf); got != v {
			t.Errorf("DecodeFixed32(EncodeFixed32(%d)) = %d", v, got)
		}
	}
}

func TestFixed64RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 1<<32 - 1, 1 << 32, 1<<63 - 1, 1 << 63, ^uint64(0)}

	for _, v := range values {
		buf := make([]byte, 8)
		EncodeFixed64(buf, v)
		if got := DecodeFixed64(buf); got != v {
			t.Errorf("DecodeFixed64(EncodeFixed64(%d)) = %d", v, got)
		}
	}
}

func TestFixedLittleEndianByteOrder(t *testing.T) {
	buf := make([]byte, 4)
	EncodeFixed32(buf, 0x04030201)
	if !bytes.Equal(buf, []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("EncodeFixed32 byte order = %v", buf)
	}

	buf8 := make([]byte, 8)
	EncodeFixed64(buf8, 0x0807060504030201)
	if !bytes.Equal(buf8, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}) {
		t.Errorf("EncodeFixed64 byte order = %v", buf8)
	}
}

func TestAppendFixed(t *testing.T) {
	buf := AppendFixed32(nil, 7)
	buf = AppendFixed64(buf, 9)

	if len(buf) != 12 {
		t.Fatalf("appended length = %d, want 12", len(buf))
	}
	if got := DecodeFixed32(buf); got != 7 {
		t.Errorf("first field = %d, want 7", got)
	}
	if got := DecodeFixed64(buf[4:]); got != 9 {
		t.Errorf("second field = %d, want 9", got)
	}
}

func TestReaderSequentialFields(t *testing.T) {
	var buf []byte
	buf = AppendFixed32(buf, 42)
	buf = append(buf, []byte("payload")...)
	buf = AppendFixed64(buf, 1<<40)

	r := NewReader(buf)

	v32, ok := r.GetFixed32()
	if !ok || v32 != 42 {
		t.Fatalf("GetFixed32 = (%d, %v), want (42, true)", v32, ok)
	}

	if r.Offset() != 4 {
		t.Errorf("Offset = %d after GetFixed32, want 4", r.Offset())
	}
	if ok := r.Skip(7); !ok {
		t.Fatal("Skip(7) failed over the payload")
	}

	v64, ok := r.GetFixed64()
	if !ok || v64 != 1<<40 {
		t.Fatalf("GetFixed64 = (%d, %v), want (%d, true)", v64, ok, uint64(1)<<40)
	}

	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReaderBounds(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})

	if _, ok := r.GetFixed32(); ok {
		t.Error("GetFixed32 succeeded with 3 bytes remaining")
	}
	if _, ok := r.GetFixed64(); ok {
		t.Error("GetFixed64 succeeded with 3 bytes remaining")
	}
	if ok := r.Skip(4); ok {
		t.Error("Skip(4) succeeded with 3 bytes remaining")
	}

	// Failed reads must not move the position.
	if r.Offset() != 0 {
		t.Errorf("Offset = %d after failed reads, want 0", r.Offset())
	}

	if ok := r.Skip(3); !ok {
		t.Error("Skip(3) failed with exactly 3 bytes remaining")
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d after Skip(3), want 0", r.Remaining())
	}
}
