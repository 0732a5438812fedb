package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirlineName_Known(t *testing.T) {
	assert.Equal(t, "Qantas", AirlineName("QF"))
	assert.Equal(t, "Garuda Indonesia", AirlineName("GA"))
	assert.Equal(t, "Jetstar Asia", AirlineName("3K"))
}

func TestAirlineName_UnknownCodePassthrough(t *testing.T) {
	assert.Equal(t, "ZZ", AirlineName("ZZ"))
	assert.Equal(t, "", AirlineName(""))
}
