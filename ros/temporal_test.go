package ros

import (
	"math"
	"testing"
)

func TestNormalizeTemporal(t *testing.T) {
	var tests = []struct {
		sec, nsec    int64
		expectedSec  int32
		expectedNSec uint32
	}{
		{1, 2, 1, 2},
		{1, 2000000001, 3, 1},
		{3, -2000000001, 0, 999999999},
		{0, 1000000000, 1, 0},
		{0, -1000000000, -1, 0},
		{0, -1, -1, 999999999},
		{-2, 3500000000, 1, 500000000},
	}
	for _, test := range tests {
		sec, nsec := normalizeTemporal(test.sec, test.nsec)
		if sec != test.expectedSec || nsec != test.expectedNSec {
			t.Errorf("normalizeTemporal(%d, %d) = (%d, %d), expected (%d, %d)",
				test.sec, test.nsec, sec, nsec, test.expectedSec, test.expectedNSec)
		}
	}
}

func TestNormalizeTemporalOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	normalizeTemporal(math.MaxInt32, 1000000000)
}

func TestTemporalIsZero(t *testing.T) {
	var t1 temporal
	if !t1.IsZero() {
		t.Fail()
	}

	t1.Sec = 1
	t1.NSec = 0
	if t1.IsZero() {
		t.Fail()
	}

	t1.Sec = 0
	t1.NSec = 1
	if t1.IsZero() {
		t.Fail()
	}

	t1.Sec = -1
	t1.NSec = 0
	if t1.IsZero() {
		t.Fail()
	}
}

func TestTemporalToSec(t *testing.T) {
	t1 := temporal{1, 500000000}
	if t1.ToSec() != 1.5 {
		t.Error(t1.ToSec())
	}
	t1.Sec, t1.NSec = 0, 1500000000
	if t1.ToSec() != 1.5 {
		t.Error(t1.ToSec())
	}
	t1.Sec, t1.NSec = -2, 500000000
	if t1.ToSec() != -1.5 {
		t.Error(t1.ToSec())
	}
}

func TestTemporalToNSec(t *testing.T) {
	t1 := temporal{1, 500000000}
	if t1.ToNSec() != 1500000000 {
		t.Fail()
	}
	t1.Sec, t1.NSec = 0, 1500000000
	if t1.ToNSec() != 1500000000 {
		t.Fail()
	}
	t1.Sec, t1.NSec = -1, 0
	if t1.ToNSec() != -1000000000 {
		t.Fail()
	}
}

func TestTemporalFromSec(t *testing.T) {
	var t1 temporal
	t1.FromSec(1.5)
	if t1.Sec != 1 || t1.NSec != 500000000 {
		t.Error(t1)
	}

	t1.FromSec(-1.5)
	if t1.Sec != -2 || t1.NSec != 500000000 {
		t.Error(t1)
	}

	// 0.3 * 1e9 is not exact in binary; the conversion rounds.
	t1.FromSec(0.3)
	if t1.Sec != 0 || t1.NSec != 300000000 {
		t.Error(t1)
	}
}

func TestTemporalSecRoundTrip(t *testing.T) {
	for _, sec := range []float64{0, 1e-9, 0.1, 0.3, 1.000000002, 12.75, 1234.567891234, -3.25, -0.000000001} {
		var t1 temporal
		t1.FromSec(sec)
		if math.Abs(t1.ToSec()-sec) > 1e-9 {
			t.Errorf("FromSec(%v).ToSec() = %v", sec, t1.ToSec())
		}
	}

	for _, t1 := range []temporal{{1, 2}, {0, 999999999}, {86400, 123456789}, {-5, 1}} {
		var t2 temporal
		t2.FromSec(t1.ToSec())
		if t2 != t1 {
			t.Errorf("expected %v, got %v", t1, t2)
		}
	}
}

func TestTemporalNormalize(t *testing.T) {
	t1 := temporal{1, 2500000000}
	t1.Normalize()
	if t1.Sec != 3 || t1.NSec != 500000000 {
		t.Error(t1)
	}
}
