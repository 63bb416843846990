package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "catppuccin-mocha", GetTheme("catppuccin").Name)
	assert.Equal(t, "default", GetTheme("default").Name)
	assert.Equal(t, "default", GetTheme("unknown").Name)
}

func TestLeadStatusColor(t *testing.T) {
	th := DefaultTheme()
	assert.Equal(t, th.LeadHot, th.LeadStatusColor("HOT"))
	assert.Equal(t, th.LeadPass, th.LeadStatusColor("PASS"))
	assert.Equal(t, th.Foreground, th.LeadStatusColor(""))
}
