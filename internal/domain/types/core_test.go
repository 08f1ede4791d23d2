package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/domain/types"
)

func TestText(t *testing.T) {
	var v struct {
		A, B, C, D types.Text
	}
	require.NoError(t, json.Unmarshal([]byte(`{"A":"42","B":48.50,"C":null,"D":" 7 "}`), &v))

	assert.Equal(t, types.Text("42"), v.A)
	assert.Equal(t, types.Text("48.50"), v.B)
	assert.Equal(t, types.Text(""), v.C)

	n, err := v.D.Int()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.InDelta(t, 48.5, v.B.Float(), 1e-9)
	assert.Zero(t, types.Text("n/a").Float())

	_, err = types.Text("abc").Int()
	require.Error(t, err)

	require.Error(t, json.Unmarshal([]byte(`{"A":true}`), &v))
}

func TestText_Float(t *testing.T) {
	tests := []struct {
		in   types.Text
		want float64
	}{
		{"48.50", 48.5},
		{" 35 ", 35},
		{"", 0},
		{"n/a", 0},
		{"NaN", 0},
		{"nan", 0},
		{"Inf", 0},
		{"-Infinity", 0},
		{"1e400", 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Float())
		})
	}
}

func TestText_Int(t *testing.T) {
	tests := []struct {
		in      types.Text
		want    int
		wantErr bool
	}{
		{in: "3", want: 3},
		{in: "3.0", want: 3},
		{in: "3.7", want: 3},
		{in: "-2.5", want: -2},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, err := tt.in.Int()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
