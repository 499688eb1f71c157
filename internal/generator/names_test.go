package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascal(t *testing.T) {
	tests := map[string]string{
		"id":           "ID",
		"freelancerId": "FreelancerID",
		"hourlyRate":   "HourlyRate",
		"hourly_rate":  "HourlyRate",
		"createdAt":    "CreatedAt",
		"avatarUrl":    "AvatarURL",
		"HTTPServer":   "HTTPServer",
		"user":         "User",
		"orderIndex":   "OrderIndex",
	}
	for in, want := range tests {
		assert.Equal(t, want, pascal(in), in)
	}
}

func TestReceiver(t *testing.T) {
	assert.Equal(t, "user", receiver("User"))
	assert.Equal(t, "milestone", receiver("Milestone"))
	assert.Equal(t, "urlMap", receiver("URLMap"))
	assert.Equal(t, "id", receiver("ID"))
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "user", snake("User"))
	assert.Equal(t, "project_status", snake("ProjectStatus"))
	assert.Equal(t, "http_server", snake("HTTPServer"))
}

func TestEnumConst(t *testing.T) {
	caser := newTitleCaser()
	assert.Equal(t, "ProjectStatusInProgress", enumConst(caser, "ProjectStatus", "IN_PROGRESS"))
	assert.Equal(t, "RoleClient", enumConst(caser, "Role", "CLIENT"))
	assert.Equal(t, "MilestoneStatusPaid", enumConst(caser, "MilestoneStatus", "PAID"))
}
