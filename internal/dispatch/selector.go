package dispatch

import (
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// SelectClosest выбирает из кандидатов агентство, ближайшее к точке
// сообщения. Строгое сравнение с текущим минимумом: при точном равенстве
// дистанций побеждает первый встреченный кандидат. Кандидаты без координат
// участвуют с "недостижимой" дистанцией и могут быть выбраны, только если
// ни у кого из кандидатов нет известного местоположения.
// Для пустого набора кандидатов возвращается nil.
//
// Фильтр пригодности (исключение роли ndrf) применяется вызывающей
// стороной до выбора, а не здесь.
func SelectClosest(lat, lng float64, candidates []*models.Agency) *models.Agency {
	var closest *models.Agency
	minDistance := geo.Unreachable

	for _, candidate := range candidates {
		distance := geo.Distance(candidate.Latitude, candidate.Longitude, &lat, &lng)
		if closest == nil || distance < minDistance {
			minDistance = distance
			closest = candidate
		}
	}
	return closest
}
