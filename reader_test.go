package nbor

import (
	"bytes"
	"errors"
	"testing"
)

func TestReader_ReadFull(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})

	p := make([]byte, 3)
	if err := r.ReadFull(p); err != nil {
		t.Fatalf("expect no err, got %v", err)
	}
	if !bytes.Equal(p, []byte{1, 2, 3}) {
		t.Errorf("expect [1 2 3], got %v", p)
	}
	if r.Remaining() != 2 {
		t.Errorf("expect 2 remaining, got %d", r.Remaining())
	}

	if err := r.ReadFull(p); err == nil {
		t.Fatalf("expect err on short read")
	} else if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expect unexpected EOF, got %v", err)
	}

	// no partial fill was reported as success
	if r.Remaining() != 2 {
		t.Errorf("expect 2 remaining after failed read, got %d", r.Remaining())
	}
}

func TestReader_ReadByte(t *testing.T) {
	r := NewReader([]byte{0x2a, 0xff})

	for i, expect := range []byte{0x2a, 0xff} {
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("byte %d: expect no err, got %v", i, err)
		}
		if b != expect {
			t.Errorf("byte %d: expect %#x, got %#x", i, expect, b)
		}
	}

	if _, err := r.ReadByte(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expect unexpected EOF, got %v", err)
	}
}

func TestReader_Remaining(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if r.Remaining() != 3 {
		t.Errorf("expect 3 remaining, got %d", r.Remaining())
	}

	if _, err := r.ReadByte(); err != nil {
		t.Fatalf("expect no err, got %v", err)
	}
	if r.Remaining() != 2 {
		t.Errorf("expect 2 remaining, got %d", r.Remaining())
	}

	if err := r.ReadFull(make([]byte, 2)); err != nil {
		t.Fatalf("expect no err, got %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("expect 0 remaining, got %d", r.Remaining())
	}
}

func TestReader_EmptyRead(t *testing.T) {
	r := NewReader(nil)
	if err := r.ReadFull([]byte{}); err != nil {
		t.Errorf("expect no err on empty read, got %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("expect 0 remaining, got %d", r.Remaining())
	}
}
