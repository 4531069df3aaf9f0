package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPF(t *testing.T) {
	assert.Equal(t, "12345678901", NormalizeCPF("123.456.789-01"))
	assert.True(t, ValidCPF("123.456.789-01"))
	assert.True(t, ValidCPF("00000000191"))
	assert.False(t, ValidCPF("111.111.111-11"))
	assert.False(t, ValidCPF("1234567890"))
	assert.False(t, ValidCPF(""))
}
