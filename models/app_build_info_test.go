package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123")
	assert.Equal(t, "v1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestNewAppBuildInfo_NotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "", "")
	assert.Equal(t, NotAvailable, info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
}
