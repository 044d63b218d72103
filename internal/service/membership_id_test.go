package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assochub-backend/internal/service"
)

func TestGenerateMembershipID(t *testing.T) {
	id := service.GenerateMembershipID("acme@x.com")
	assert.Len(t, id, 10)
	assert.Regexp(t, `^[1-9][0-9]{9}$`, id)
}

func TestGenerateMembershipID_Deterministic(t *testing.T) {
	first := service.GenerateMembershipID("acme@x.com")
	second := service.GenerateMembershipID("acme@x.com")
	assert.Equal(t, first, second)

	// Normalization: case and surrounding whitespace do not change the id.
	assert.Equal(t, first, service.GenerateMembershipID("  ACME@X.COM  "))

	assert.NotEqual(t, first, service.GenerateMembershipID("other@x.com"))
}
