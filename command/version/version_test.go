package version

import (
	"bytes"
	"context"
	"testing"

	"lcsubstr/config"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := &VersionCommand{out: buf}

	require.NoError(t, cmd.Execute(context.Background(), &config.Config{}, nil))
	require.Equal(t, "dev\n", buf.String())
}
