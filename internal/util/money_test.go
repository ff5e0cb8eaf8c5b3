package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestParseAmountToCent_Valid 正常金额精确转分
func TestParseAmountToCent_Valid(t *testing.T) {
	testCases := []struct {
		in   string
		want int64
	}{
		{"0.01", 1},
		{"1", 100},
		{"12.34", 1234},
		{"100.5", 10050},
		{"9999999.99", 999999999},
	}

	for _, tc := range testCases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("bad test input %q: %v", tc.in, err)
		}
		got, err := ParseAmountToCent(d)
		if err != nil {
			t.Errorf("ParseAmountToCent(%s) error = %v, want nil", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmountToCent(%s) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

// TestParseAmountToCent_Invalid 零、负数、超上限、超过两位小数都要拒绝
func TestParseAmountToCent_Invalid(t *testing.T) {
	testCases := []string{
		"0",
		"-0.01",
		"-100",
		"10000000", // 上限
		"1.234",    // 分以下还有尾数
	}

	for _, in := range testCases {
		d, err := decimal.NewFromString(in)
		if err != nil {
			t.Fatalf("bad test input %q: %v", in, err)
		}
		if _, err := ParseAmountToCent(d); err == nil {
			t.Errorf("ParseAmountToCent(%s) error = nil, want error", in)
		}
	}
}

// TestFormatCent 分转两位小数字符串
func TestFormatCent(t *testing.T) {
	testCases := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{1234, "12.34"},
		{10050, "100.50"},
		{-20000, "-200.00"},
	}

	for _, tc := range testCases {
		if got := FormatCent(tc.in); got != tc.want {
			t.Errorf("FormatCent(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestCentToDecimal 分和元的互转不丢精度
func TestCentToDecimal(t *testing.T) {
	d := CentToDecimal(1234)
	if d.String() != "12.34" {
		t.Errorf("CentToDecimal(1234) = %s, want 12.34", d)
	}

	cent, err := ParseAmountToCent(d)
	if err != nil || cent != 1234 {
		t.Errorf("roundtrip = %d, %v, want 1234, nil", cent, err)
	}
}
