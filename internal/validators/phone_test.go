package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		region  string
		want    string
		wantErr error
	}{
		{name: "e164", raw: "+237600000001", region: "CM", want: "+237600000001"},
		{name: "national", raw: "600000001", region: "CM", want: "+237600000001"},
		{name: "formatted", raw: "+237 6 00 00 00 01", region: "CM", want: "+237600000001"},
		{name: "lowercase region", raw: "600000001", region: "cm", want: "+237600000001"},
		{name: "international with other default region", raw: "+237699112233", region: "FR", want: "+237699112233"},
		{name: "empty", raw: "  ", region: "CM", wantErr: ErrInvalidPhone},
		{name: "letters", raw: "phone", region: "CM", wantErr: ErrInvalidPhone},
		{name: "too short", raw: "+2376", region: "CM", wantErr: ErrInvalidPhone},
		{name: "foreign number", raw: "+33612345678", region: "CM", wantErr: ErrUnsupportedCountry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw, tt.region)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
