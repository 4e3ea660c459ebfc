package tablesdomain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "RFC3339", input: `"2024-01-02T08:30:00Z"`, want: time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC)},
		{name: "RFC3339 com milissegundos", input: `"2024-01-02T08:30:00.123Z"`, want: time.Date(2024, 1, 2, 8, 30, 0, 123000000, time.UTC)},
		{name: "data e hora", input: `"2024-01-02 08:30:00"`, want: time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC)},
		{name: "somente data", input: `"2024-01-02"`, want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{name: "epoch em milissegundos", input: `1704067200000`, want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "nulo", input: `null`},
		{name: "formato desconhecido", input: `"02/01/2024"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "esperado %s, obtido %s", tt.want, ts.Time)
		})
	}
}
