package models

import "github.com/m04kA/LodgeBookingService/internal/domain"

// ListRoomsRequest фильтр инвентаря номеров
type ListRoomsRequest struct {
	SiteID             *int64
	BedConfigurationID *int64
	IncludeInactive    bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRoomsRequest) ToDomainFilter() domain.RoomFilter {
	return domain.RoomFilter{
		SiteID:             r.SiteID,
		BedConfigurationID: r.BedConfigurationID,
		IncludeInactive:    r.IncludeInactive,
	}
}

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID                  string  `json:"id"`
	SiteID              int64   `json:"siteId"`
	Name                string  `json:"name"`
	Capacity            int     `json:"capacity"`
	IsActive            bool    `json:"isActive"`
	BedConfigurationIDs []int64 `json:"bedConfigurationIds"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	bedConfigurations := r.BedConfigurationIDs
	if bedConfigurations == nil {
		bedConfigurations = []int64{}
	}

	return &RoomResponse{
		ID:                  r.ID,
		SiteID:              r.SiteID,
		Name:                r.Name,
		Capacity:            r.Capacity,
		IsActive:            r.IsActive,
		BedConfigurationIDs: bedConfigurations,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		if r := FromDomainRoom(room); r != nil {
			resp.Rooms = append(resp.Rooms, *r)
		}
	}
	return resp
}
