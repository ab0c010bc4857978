package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odpf/console/client/cmd/internal/logger"
	"github.com/odpf/console/client/form/connection"
	"github.com/odpf/console/internal/models"
)

func TestPrintTestResult(t *testing.T) {
	t.Run("prints the permissions table when connected", func(t *testing.T) {
		buf := new(bytes.Buffer)
		logger.PrintTestResult(logger.NewWriterLogger(buf), &connection.TestResult{
			OpenPermissionDialog: true,
			Response: &models.CheckConnectionConfigResponse{
				IsConnected: true,
				Privileges: []models.ConnectionRolePrivilege{
					{Grantee: "app", Schema: "public", Table: "users", PrivilegeType: []string{"SELECT", "INSERT"}},
				},
			},
		})

		out := buf.String()
		assert.Contains(t, out, "Connection Permissions")
		assert.Contains(t, out, "SELECT, INSERT")
		assert.Contains(t, out, "users")
		assert.Contains(t, out, "ROLE")
		assert.Less(t, strings.Index(out, "ROLE"), strings.Index(out, "users"))
	})
	t.Run("prints the connection error otherwise", func(t *testing.T) {
		buf := new(bytes.Buffer)
		msg := "no route to host"
		logger.PrintTestResult(logger.NewWriterLogger(buf), &connection.TestResult{
			Response: &models.CheckConnectionConfigResponse{ConnectionError: &msg},
		})

		out := buf.String()
		assert.Contains(t, out, "Unable to connect")
		assert.Contains(t, out, msg)
	})
}

func TestPlainFormatterSortsFields(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.NewWriterLogger(buf).Info("Unable to create connection!", "status", 409, "description", "taken")

	assert.Equal(t, "Unable to create connection! description: taken status: 409 \n", buf.String())
}
