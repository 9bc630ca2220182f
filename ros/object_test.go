package ros

import (
	"math"
	"testing"
)

const objectTestDoc = `{
	"name": "scan",
	"count": 12,
	"big": 3000000000,
	"ratio": 0.25,
	"limit": "inf",
	"huge": 1e300,
	"missing": null,
	"nested": {"count": 99},
	"ranges": [1, "nan", null, "-Infinity", 2.5],
	"empty": [],
	"bad": [1, "x"],
	"overflow": [1, 1e39]
}`

func TestNewObject(t *testing.T) {
	for _, input := range []string{`[1]`, `"x"`, `12`, `{"a":`, ``, `{a:1}`, `{"a":1 "b":2}`, `{"a":1} x`} {
		if _, err := NewObject("test", []byte(input)); err == nil {
			t.Errorf("%q: expected error", input)
		}
	}
	obj, err := NewObject("test", []byte(objectTestDoc))
	if err != nil {
		t.Fatal(err)
	}
	if obj.TypeName() != "test" {
		t.Error(obj.TypeName())
	}
}

func TestObjectScalars(t *testing.T) {
	obj, err := NewObject("test", []byte(objectTestDoc))
	if err != nil {
		t.Fatal(err)
	}

	if v, err := obj.Int64("count", -1); err != nil || v != 12 {
		t.Error(v, err)
	}
	if v, err := obj.Int64("absent", -1); err != nil || v != -1 {
		t.Error(v, err)
	}
	if v, err := obj.Int64("missing", 7); err != nil || v != 7 {
		t.Error(v, err)
	}
	if _, err := obj.Int32("big", 0); err == nil {
		t.Error("expected overflow error")
	}
	if _, err := obj.Int64("name", 0); err == nil {
		t.Error("expected type error")
	}
	if v, err := obj.Float64("ratio", 0); err != nil || v != 0.25 {
		t.Error(v, err)
	}
	if v, err := obj.Float32("limit", 0); err != nil || !math.IsInf(float64(v), 1) {
		t.Error(v, err)
	}
	if v, err := obj.Float64("huge", 0); err != nil || v != 1e300 {
		t.Error(v, err)
	}
	if _, err := obj.Float32("huge", 0); err == nil {
		t.Error("expected float32 overflow error")
	}
	if v, err := obj.Float32("absent", 3); err != nil || v != 3 {
		t.Error(v, err)
	}
	if v, err := obj.String("name", ""); err != nil || v != "scan" {
		t.Error(v, err)
	}
	if v, err := obj.String("absent", "default"); err != nil || v != "default" {
		t.Error(v, err)
	}
	if _, err := obj.String("count", ""); err == nil {
		t.Error("expected type error")
	}
	if !obj.Has("name") || obj.Has("missing") || obj.Has("absent") {
		t.Error("Has")
	}
}

func TestObjectDecode(t *testing.T) {
	obj, err := NewObject("test", []byte(objectTestDoc))
	if err != nil {
		t.Fatal(err)
	}

	var count int64
	err = obj.Decode("nested", func(data []byte) error {
		nested, err := NewObject("nested", data)
		if err != nil {
			return err
		}
		count, err = nested.Int64("count", 0)
		return err
	})
	if err != nil || count != 99 {
		t.Error(count, err)
	}

	called := false
	if err := obj.Decode("absent", func([]byte) error { called = true; return nil }); err != nil || called {
		t.Error("absent key must not be decoded")
	}
	if err := obj.Decode("name", func([]byte) error { return nil }); err == nil {
		t.Error("expected type error")
	}
}

func TestObjectFloat32Array(t *testing.T) {
	obj, err := NewObject("test", []byte(objectTestDoc))
	if err != nil {
		t.Fatal(err)
	}

	ranges, err := obj.Float32Array("ranges")
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges) != 5 {
		t.Fatal(ranges)
	}
	if ranges[0] != 1 || ranges[4] != 2.5 {
		t.Error(ranges)
	}
	if !math.IsNaN(float64(ranges[1])) || !math.IsNaN(float64(ranges[2])) {
		t.Error(ranges)
	}
	if !math.IsInf(float64(ranges[3]), -1) {
		t.Error(ranges)
	}

	for _, key := range []string{"empty", "absent", "missing"} {
		values, err := obj.Float32Array(key)
		if err != nil {
			t.Error(key, err)
		}
		if values == nil || len(values) != 0 {
			t.Errorf("%s: expected empty slice, got %#v", key, values)
		}
	}

	if _, err := obj.Float32Array("bad"); err == nil {
		t.Error("expected element error")
	}
	if _, err := obj.Float32Array("overflow"); err == nil {
		t.Error("expected float32 overflow error")
	}
	if _, err := obj.Float32Array("count"); err == nil {
		t.Error("expected type error")
	}
}
