package logger

import (
	"bytes"
	"strings"

	"github.com/odpf/salt/log"
	"github.com/olekukonko/tablewriter"

	"github.com/odpf/console/client/form/connection"
)

// PrintTestResult prints the role privileges of a reachable database or
// the reason it could not be reached
func PrintTestResult(l log.Logger, result *connection.TestResult) {
	if result.OpenPermissionDialog {
		l.Info(ColoredSuccess("Connection Permissions"))
		PrintPermissions(l, result)
		return
	}
	l.Error(ColoredError("Unable to connect"))
	l.Error(result.ErrorMessage())
}

func PrintPermissions(l log.Logger, result *connection.TestResult) {
	privileges := result.Response.Privileges
	if len(privileges) == 0 {
		l.Info("no privileges were returned for the connection role")
		return
	}

	buf := new(bytes.Buffer)
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetHeader([]string{
		"Role",
		"Schema",
		"Table",
		"Privileges",
	})
	for _, p := range privileges {
		table.Append([]string{
			p.Grantee,
			p.Schema,
			p.Table,
			strings.Join(p.PrivilegeType, ", "),
		})
	}
	table.Render()
	l.Info(strings.TrimRight(buf.String(), "\n"))
}
