package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestDistance_Symmetric(t *testing.T) {
	// Мумбаи и Дели
	lat1, lng1 := ptr(19.0760), ptr(72.8777)
	lat2, lng2 := ptr(28.6139), ptr(77.2090)

	d1 := Distance(lat1, lng1, lat2, lng2)
	d2 := Distance(lat2, lng2, lat1, lng1)

	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistance_SamePointIsZero(t *testing.T) {
	lat, lng := ptr(19.0760), ptr(72.8777)

	d := Distance(lat, lng, lat, lng)

	assert.Equal(t, 0.0, d)
}

func TestDistance_KnownFixture(t *testing.T) {
	// Мумбаи -> Дели, примерно 1153 км
	d := Distance(ptr(19.0760), ptr(72.8777), ptr(28.6139), ptr(77.2090))

	assert.InDelta(t, 1153, d, 10)
}

func TestDistance_UnknownCoordinateIsUnreachable(t *testing.T) {
	lat, lng := ptr(19.0760), ptr(72.8777)

	assert.True(t, math.IsInf(Distance(nil, lng, lat, lng), 1))
	assert.True(t, math.IsInf(Distance(lat, nil, lat, lng), 1))
	assert.True(t, math.IsInf(Distance(lat, lng, nil, lng), 1))
	assert.True(t, math.IsInf(Distance(lat, lng, lat, nil), 1))
}

func TestDistance_AntipodalPointsDoNotProduceNaN(t *testing.T) {
	// Антиподы - худший случай для округления аргумента Asin
	d := Distance(ptr(0), ptr(0), ptr(0), ptr(180))

	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*earthRadiusKM, d, 1)
}

func TestDistance_NaNInputIsUnreachable(t *testing.T) {
	d := Distance(ptr(math.NaN()), ptr(0), ptr(0), ptr(0))

	assert.True(t, math.IsInf(d, 1))
}
