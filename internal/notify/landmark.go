package notify

import "strings"

// landmarkFallback используется, когда из описания не удалось извлечь ориентир.
const landmarkFallback = "at the reported coordinates"

// Landmark пытается угадать ориентир из свободного текста описания:
// берется токен, следующий за последним вхождением слова "near".
// Эвристика негарантированная: при любой неудаче извлечения
// возвращается запасной вариант, ошибки невозможны.
func Landmark(description string) string {
	idx := strings.LastIndex(description, "near")
	if idx < 0 {
		return landmarkFallback
	}

	parts := strings.Split(description[idx+len("near"):], " ")
	if len(parts) < 2 || parts[1] == "" {
		return landmarkFallback
	}
	return "near " + parts[1]
}
