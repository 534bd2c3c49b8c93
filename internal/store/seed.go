package store

import (
	"time"

	"civigo/backend/internal/models"
)

// DemoSeed returns the demo dataset the prototype boots with, so the map and
// track views have something to show before anyone reports a problem.
func DemoSeed() []models.Complaint {
	return []models.Complaint{
		{
			ID:          "1",
			UserID:      "2",
			UserName:    "Maria Silva",
			Type:        "Bueiro aberto",
			Description: "Bueiro sem tampa na esquina, muito perigoso",
			Location:    "Rua da Aurora, 123",
			Coordinates: &models.Coordinates{Lat: -8.0631, Lng: -34.8731},
			Severity:    models.SeverityHigh,
			Photos:      []string{},
			Status:      models.StatusInProgress,
			Upvotes:     4,
			UpvotedBy:   []string{"1", "3", "4", "5"},
			CreatedAt:   time.Date(2025, 11, 20, 10, 0, 0, 0, time.Local),
			UpdatedAt:   time.Date(2025, 11, 22, 14, 30, 0, 0, time.Local),
		},
		{
			ID:          "2",
			UserID:      "3",
			UserName:    "João Santos",
			Type:        "Calçada danificada",
			Description: "Calçada quebrada em frente ao mercado",
			Location:    "Av. Boa Viagem, 2500",
			Coordinates: &models.Coordinates{Lat: -8.1282, Lng: -34.8978},
			Severity:    models.SeverityMedium,
			Photos:      []string{},
			Status:      models.StatusPending,
			Upvotes:     1,
			UpvotedBy:   []string{"2"},
			CreatedAt:   time.Date(2025, 11, 25, 15, 20, 0, 0, time.Local),
			UpdatedAt:   time.Date(2025, 11, 25, 15, 20, 0, 0, time.Local),
		},
		{
			ID:          "3",
			UserID:      "4",
			UserName:    "Ana Costa",
			Type:        "Falta de iluminação",
			Description: "Poste de luz queimado há 2 semanas, área muito escura à noite",
			Location:    "Rua do Hospício, 456",
			Coordinates: &models.Coordinates{Lat: -8.0595, Lng: -34.8717},
			Severity:    models.SeverityHigh,
			Photos:      []string{},
			Status:      models.StatusPending,
			Upvotes:     2,
			UpvotedBy:   []string{"2", "3"},
			CreatedAt:   time.Date(2025, 11, 26, 8, 15, 0, 0, time.Local),
			UpdatedAt:   time.Date(2025, 11, 26, 8, 15, 0, 0, time.Local),
		},
		{
			ID:          "4",
			UserID:      "5",
			UserName:    "Pedro Oliveira",
			Type:        "Buraco na rua",
			Description: "Buraco grande que está causando acidentes",
			Location:    "Av. Agamenon Magalhães, 1000",
			Coordinates: &models.Coordinates{Lat: -8.0476, Lng: -34.8946},
			Severity:    models.SeverityHigh,
			Photos:      []string{},
			Status:      models.StatusResolved,
			Upvotes:     3,
			UpvotedBy:   []string{"2", "3", "4"},
			CreatedAt:   time.Date(2025, 11, 15, 14, 0, 0, 0, time.Local),
			UpdatedAt:   time.Date(2025, 11, 27, 10, 0, 0, 0, time.Local),
		},
	}
}
