package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 1020, TimeToMinutes("17:00"))
	assert.Equal(t, 1020, TimeToMinutes("17:00:30"))
	assert.Equal(t, 0, TimeToMinutes("rusak"))
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "17:00", MinutesToTime(1020))
	assert.Equal(t, "19:30", MinutesToTime(1170))
	// lembur lewat tengah malam tetap jam valid
	assert.Equal(t, "01:00", MinutesToTime(25*60))
	assert.Equal(t, "00:00", MinutesToTime(-5))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(ErrValidation("x")))
	assert.Equal(t, 403, HTTPStatus(ErrState("x")))
	assert.Equal(t, 404, HTTPStatus(ErrNotFound("x")))
	assert.Equal(t, 409, HTTPStatus(ErrConflict("x")))
	assert.Equal(t, 500, HTTPStatus(assert.AnError))
}
