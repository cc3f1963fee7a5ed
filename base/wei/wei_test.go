package wei

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		in   string
		want string
	}{
		{"1", "1000000000000000000"},
		{"0.1", "100000000000000000"},
		{"10", "10000000000000000000"},
		{"0.000000000000000001", "1"},
		{"0", "0"},
		{" 2.5 ", "2500000000000000000"},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		req.NoError(err, c.in)
		want, _ := new(big.Int).SetString(c.want, 10)
		req.Equal(want, got, c.in)
	}

	for _, bad := range []string{"", "banana", "-1", "0.0000000000000000001", "1.2.3"} {
		_, err := Parse(bad)
		req.Error(err, bad)
	}
}

func TestParseOrDefault(t *testing.T) {
	req := require.New(t)

	got, err := ParseOrDefault("", "10")
	req.NoError(err)
	want, _ := new(big.Int).SetString("10000000000000000000", 10)
	req.Equal(want, got)

	got, err = ParseOrDefault("2", "10")
	req.NoError(err)
	want, _ = new(big.Int).SetString("2000000000000000000", 10)
	req.Equal(want, got)
}

func TestParseBaseUnits(t *testing.T) {
	req := require.New(t)

	got, err := ParseBaseUnits("123456789012345678901234567890")
	req.NoError(err)
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	req.Equal(want, got)

	for _, bad := range []string{"", "1.5", "-3", "0x10"} {
		_, err := ParseBaseUnits(bad)
		req.Error(err, bad)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	req := require.New(t)

	for _, s := range []string{"1", "0.1", "1234.000000000000000001", "0"} {
		v, err := Parse(s)
		req.NoError(err)
		back, err := Parse(Format(v))
		req.NoError(err)
		req.Equal(v, back, s)
	}

	req.Equal("0", Format(nil))
}
