package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceKind(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ServiceKind
		wantErr bool
	}{
		{name: "traffic", in: "traffic", want: KindTraffic},
		{name: "bin", in: "bin", want: KindBin},
		{name: "noise", in: "noise", want: KindNoise},
		{name: "mixed case", in: "Traffic", want: KindTraffic},
		{name: "upper case", in: "NOISE", want: KindNoise},
		{name: "unknown", in: "water", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServiceKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
