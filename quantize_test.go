package meshopt

import (
	"math"
	"testing"
)

func TestQuantizeUnorm(t *testing.T) {
	cases := []struct {
		v    float32
		bits int
		want int32
	}{
		{0, 8, 0},
		{1, 8, 255},
		{0.5, 8, 128},
		{-1, 8, 0},
		{2, 8, 255},
	}
	for _, c := range cases {
		if got := QuantizeUnorm(c.v, c.bits); got != c.want {
			t.Errorf("QuantizeUnorm(%v, %d) = %d, want %d", c.v, c.bits, got, c.want)
		}
	}
}

func TestQuantizeSnorm(t *testing.T) {
	cases := []struct {
		v    float32
		bits int
		want int32
	}{
		{0, 8, 0},
		{1, 8, 127},
		{-1, 8, -127},
		{2, 8, 127},
		{-2, 8, -127},
	}
	for _, c := range cases {
		if got := QuantizeSnorm(c.v, c.bits); got != c.want {
			t.Errorf("QuantizeSnorm(%v, %d) = %d, want %d", c.v, c.bits, got, c.want)
		}
	}
}

func TestQuantizeHalf(t *testing.T) {
	cases := []struct {
		name string
		v    float32
		want uint16
	}{
		{"zero", 0.0, 0x0000},
		{"one", 1.0, 0x3c00},
		{"negative_two", -2.0, 0xc000},
		{"max_normal", 65504.0, 0x7bff},
		{"underflow_to_zero", 1e-10, 0x0000},
		{"overflow_to_inf", 1e20, 0x7c00},
		{"nan", float32(math.NaN()), 0x7e00},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := QuantizeHalf(c.v); got != c.want {
				t.Errorf("QuantizeHalf(%v) = 0x%04x, want 0x%04x", c.v, got, c.want)
			}
		})
	}
}

func FuzzQuantizeUnorm(f *testing.F) {
	f.Add(float32(0.5))
	f.Add(float32(-3.2))
	f.Add(float32(1e9))
	f.Fuzz(func(t *testing.T, v float32) {
		if math.IsNaN(float64(v)) {
			t.Skip()
		}
		got := QuantizeUnorm(v, 8)
		if got < 0 || got > 255 {
			t.Errorf("QuantizeUnorm(%v, 8) = %d out of [0,255]", v, got)
		}
	})
}

func FuzzQuantizeSnorm(f *testing.F) {
	f.Add(float32(0.5))
	f.Add(float32(-3.2))
	f.Add(float32(1e9))
	f.Fuzz(func(t *testing.T, v float32) {
		if math.IsNaN(float64(v)) {
			t.Skip()
		}
		got := QuantizeSnorm(v, 8)
		if got < -127 || got > 127 {
			t.Errorf("QuantizeSnorm(%v, 8) = %d out of [-127,127]", v, got)
		}
	})
}

func FuzzQuantizeHalf(f *testing.F) {
	f.Add(float32(1.0))
	f.Add(float32(-65504.0))
	f.Add(float32(0.0))
	f.Fuzz(func(t *testing.T, v float32) {
		got := QuantizeHalf(v)
		if math.IsNaN(float64(v)) {
			if got != 0x7e00 {
				t.Errorf("QuantizeHalf(NaN) = 0x%04x, want 0x7e00", got)
			}
			return
		}
		// Sign bit of the result must match the sign of a finite, nonzero
		// input (spec §4.8: "sign preserved").
		if v != 0 && !math.IsInf(float64(v), 0) {
			wantSignBit := uint16(0)
			if v < 0 {
				wantSignBit = 0x8000
			}
			if got&0x8000 != wantSignBit {
				t.Errorf("QuantizeHalf(%v) sign bit mismatch: got 0x%04x", v, got)
			}
		}
	})
}
