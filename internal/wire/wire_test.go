// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import (
	"math"
	"testing"
)

func TestZigZag32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, math.MaxInt32, math.MinInt32} {
		got := ZigZagDecode32(ZigZagEncode32(v))
		if got != v {
			t.Errorf("ZigZag32 round trip: got %d, want %d", got, v)
		}
	}
	// Small-magnitude negatives must zigzag to small varints, not huge ones.
	if ZigZagEncode32(-1) != 1 {
		t.Errorf("ZigZagEncode32(-1) = %d, want 1", ZigZagEncode32(-1))
	}
}

func TestZigZag64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 2, -2, math.MaxInt64, math.MinInt64} {
		got := ZigZagDecode64(ZigZagEncode64(v))
		if got != v {
			t.Errorf("ZigZag64 round trip: got %d, want %d", got, v)
		}
	}
}

func TestTagRoundTrip(t *testing.T) {
	var buf []byte
	buf = AppendTag(buf, 5, Varint)
	num, typ, n := ConsumeTag(buf)
	if num != 5 || typ != Varint || n != len(buf) {
		t.Errorf("ConsumeTag = (%d, %d, %d), want (5, %d, %d)", num, typ, n, Varint, len(buf))
	}
}

func TestBytesRoundTrip(t *testing.T) {
	var buf []byte
	buf = AppendBytes(buf, []byte("hello"))
	got, n := ConsumeBytes(buf)
	if string(got) != "hello" || n != len(buf) {
		t.Errorf("ConsumeBytes = (%q, %d), want (\"hello\", %d)", got, n, len(buf))
	}
	if SizeBytes(5) != len(buf) {
		t.Errorf("SizeBytes(5) = %d, want %d", SizeBytes(5), len(buf))
	}
}

func TestBoolToVarint(t *testing.T) {
	if BoolToVarint(true) != 1 {
		t.Errorf("BoolToVarint(true) = %d, want 1", BoolToVarint(true))
	}
	if BoolToVarint(false) != 0 {
		t.Errorf("BoolToVarint(false) = %d, want 0", BoolToVarint(false))
	}
}

func TestCombineHashIsOrderSensitive(t *testing.T) {
	a := CombineHash(CombineHash(17, 1), 2)
	b := CombineHash(CombineHash(17, 2), 1)
	if a == b {
		t.Error("CombineHash should be order-sensitive, got equal hashes for reversed inputs")
	}
}

func TestHashConsistentWithEquality(t *testing.T) {
	if HashString("abc") != HashString("abc") {
		t.Error("HashString not consistent across equal inputs")
	}
	if HashBytes([]byte("abc")) != HashString("abc") {
		t.Error("HashBytes and HashString should agree on the same byte content")
	}
}

func TestCompareThreeWay(t *testing.T) {
	if CompareInt64(1, 2) >= 0 {
		t.Error("CompareInt64(1, 2) should be negative")
	}
	if CompareInt64(2, 1) <= 0 {
		t.Error("CompareInt64(2, 1) should be positive")
	}
	if CompareInt64(1, 1) != 0 {
		t.Error("CompareInt64(1, 1) should be zero")
	}
	if CompareUint64(math.MaxUint64, 1) <= 0 {
		t.Error("CompareUint64 must order unsigned, not signed: MaxUint64 > 1")
	}
}

func TestCompareFloatNaNIsStable(t *testing.T) {
	nan := math.Float64frombits(0x7ff8000000000001)
	if c := CompareFloat64(nan, nan); c != 0 {
		t.Errorf("CompareFloat64(nan, nan) = %d, want 0", c)
	}
	// A NaN must compare consistently (not "unordered") against a normal value.
	c1 := CompareFloat64(nan, 1.0)
	c2 := CompareFloat64(1.0, nan)
	if c1 == 0 || c2 == 0 || c1 == c2 {
		t.Errorf("CompareFloat64(nan, 1.0)=%d and CompareFloat64(1.0, nan)=%d should be non-zero and opposite in sign", c1, c2)
	}
}

func TestCheckMaxSize(t *testing.T) {
	if err := CheckMaxSize(16, 16); err != nil {
		t.Errorf("CheckMaxSize(16, 16) = %v, want nil (at the ceiling, not over it)", err)
	}
	if err := CheckMaxSize(17, 16); err == nil {
		t.Error("CheckMaxSize(17, 16) = nil, want a size-exceeded error")
	}
	if err := CheckMaxSize(1<<30, 0); err != nil {
		t.Errorf("CheckMaxSize(n, 0) = %v, want nil (max<=0 disables the check)", err)
	}
}
