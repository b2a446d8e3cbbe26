package badoption_test

import (
	"testing"
	"time"

	"github.com/sagernet/sing-wireless/common/json"
	"github.com/sagernet/sing-wireless/common/json/badoption"

	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	t.Parallel()
	var duration badoption.Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &duration))
	require.Equal(t, 90*time.Second, duration.Build())
	content, err := json.Marshal(duration)
	require.NoError(t, err)
	require.Equal(t, `"1m30s"`, string(content))
	require.Error(t, json.Unmarshal([]byte(`90`), &duration))
	require.Error(t, json.Unmarshal([]byte(`"soon"`), &duration))
}
