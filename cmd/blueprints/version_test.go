package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion_Default(t *testing.T) {
	assert.NotEmpty(t, getVersion())
}

func TestGetVersion_LdflagsOverride(t *testing.T) {
	orig := version
	defer func() { version = orig }()

	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", getVersion())
}
