// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/tollgrid/internal/cli"
	"github.com/katalvlaran/tollgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

const vehiclesCSV = `id_1,id_2,route,car,bus,truck
801,802,11,10,2,9
801,803,11,30,1,7
802,803,12,20,9,5
`

const roadsCSV = `id_start,id_end,distance
1001400,1001402,9.7
1001402,1001404,20.2
`

const coverageCSV = `id,id_2,startDay,startTime,endDay,endTime
1,1,Monday,00:00:00,Wednesday,12:00:00
1,1,Wednesday,12:00:00,Sunday,23:59:59
2,1,Monday,05:00:00,Friday,18:00:00
`

// writeFile stores content under the test's temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(cli.WithLogger(context.Background(), testutil.NewTestLogger(t)))
	return out.String(), err
}
