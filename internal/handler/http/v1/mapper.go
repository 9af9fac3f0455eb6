package v1

import (
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

// DTOToEmergencyModel преобразует DTO публичного сообщения в доменную модель
func DTOToEmergencyModel(dto ReportEmergencyRequest) *models.Emergency {
	return &models.Emergency{
		Latitude:    *dto.Lat,
		Longitude:   *dto.Lng,
		Description: dto.Description,
		Tag:         dto.Tag,
		Severity:    dto.Severity,
	}
}

// DTOToRegisterInput преобразует DTO регистрации во входные данные сервиса
func DTOToRegisterInput(dto RegisterRequest) service.RegisterInput {
	return service.RegisterInput{
		Name:       dto.Name,
		Email:      dto.Email,
		Password:   dto.Password,
		Expertise:  dto.Expertise,
		RescuingID: dto.RescuingID,
		Phone:      dto.Phone,
	}
}

// ModelToUserResponse преобразует доменную модель агентства в краткий DTO
func ModelToUserResponse(model *models.Agency) *UserResponse {
	return &UserResponse{
		ID:   model.ID,
		Name: model.Name,
		Role: model.Role,
	}
}

// ModelToAgencyResponse преобразует доменную модель в DTO для ответа
func ModelToAgencyResponse(model *models.Agency) *AgencyResponse {
	return &AgencyResponse{
		ID:          model.ID,
		Name:        model.Name,
		Expertise:   model.Expertise,
		Role:        model.Role,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Verified:    model.Verified,
		AgencyType:  model.AgencyType,
		LastUpdated: model.LastUpdated,
	}
}

// ModelsToAgencyResponses преобразует слайс моделей в слайс DTO
func ModelsToAgencyResponses(models []*models.Agency) []*AgencyResponse {
	responses := make([]*AgencyResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAgencyResponse(model)
	}
	return responses
}

// DetailsToEmergencyResponse преобразует дополненную модель сообщения в DTO
func DetailsToEmergencyResponse(details *service.EmergencyDetails) *EmergencyResponse {
	return &EmergencyResponse{
		ID:              details.ID,
		Latitude:        details.Latitude,
		Longitude:       details.Longitude,
		Description:     details.Description,
		Tag:             details.Tag,
		Severity:        details.Severity,
		SeverityDisplay: details.SeverityDisplay,
		Status:          details.Status,
		Distance:        details.DistanceMeters,
		CreatedAt:       details.CreatedAt,
	}
}

// DetailsToEmergencyResponses преобразует слайс дополненных моделей в слайс DTO
func DetailsToEmergencyResponses(details []*service.EmergencyDetails) []*EmergencyResponse {
	responses := make([]*EmergencyResponse, len(details))
	for i, d := range details {
		responses[i] = DetailsToEmergencyResponse(d)
	}
	return responses
}
