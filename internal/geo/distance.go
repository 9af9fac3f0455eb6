package geo

import "math"

// earthRadiusKM - средний радиус Земли в километрах.
const earthRadiusKM = 6371

// Unreachable - сентинел "недостижимой" дистанции. Больше любой реальной
// дистанции, поэтому кандидат без координат проигрывает любому кандидату
// с известным местоположением.
var Unreachable = math.Inf(1)

// Distance вычисляет дистанцию большого круга (формула гаверсинуса)
// между двумя точками в километрах. Если хотя бы одна координата
// неизвестна или вычисление выходит за тригонометрическую область,
// возвращается Unreachable, а не NaN. Чистая функция.
func Distance(lat1, lng1, lat2, lng2 *float64) float64 {
	if lat1 == nil || lng1 == nil || lat2 == nil || lng2 == nil {
		return Unreachable
	}

	rlat1 := radians(*lat1)
	rlat2 := radians(*lat2)
	dlat := radians(*lat2 - *lat1)
	dlng := radians(*lng2 - *lng1)

	sinLat := math.Sin(dlat / 2)
	sinLng := math.Sin(dlng / 2)
	a := sinLat*sinLat + math.Cos(rlat1)*math.Cos(rlat2)*sinLng*sinLng

	// Из-за погрешности float64 значение может чуть выйти за [0, 1],
	// что выбило бы Asin за область определения.
	if a < 0 || math.IsNaN(a) {
		return Unreachable
	}
	if a > 1 {
		a = 1
	}

	c := 2 * math.Asin(math.Sqrt(a))
	d := c * earthRadiusKM
	if math.IsNaN(d) || d < 0 {
		return Unreachable
	}
	return d
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
