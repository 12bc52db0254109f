package client

import "deal-pipeline-api/internal/domain"

// Built-in mock data mirroring the demo dataset the UI was built against.

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Vobb OS Pro", Description: "Professional operating system", Price: 299},
		{ID: "2", Name: "Vobb OS Enterprise", Description: "Enterprise-grade OS", Price: 599},
		{ID: "3", Name: "Vobb OS Lite", Description: "Lightweight OS for basic needs", Price: 99},
		{ID: "4", Name: "Vobb Security Suite", Description: "Advanced security package", Price: 199},
	}
}

func seedClients() []domain.Client {
	return []domain.Client{
		{ID: "1", Name: "John Smith", Email: "john@techcorp.com", Company: "TechCorp Inc."},
		{ID: "2", Name: "Sarah Johnson", Email: "sarah@innovate.com", Company: "Innovate Solutions"},
		{ID: "3", Name: "Mike Chen", Email: "mike@startup.io", Company: "Startup.io"},
		{ID: "4", Name: "Emily Davis", Email: "emily@enterprise.com", Company: "Enterprise Corp"},
	}
}

func seedDeals() []domain.Deal {
	return []domain.Deal{
		{
			ID:          "1",
			ClientName:  "John Smith",
			ProductName: "Vobb OS Pro",
			Stage:       domain.StageLeadGenerated,
			CreatedDate: "2024-01-15",
			AssignedTo:  "Sales Team A",
			Value:       299,
			Notes:       "Interested in professional features",
		},
		{
			ID:          "2",
			ClientName:  "Sarah Johnson",
			ProductName: "Vobb OS Enterprise",
			Stage:       domain.StageApplicationSubmitted,
			CreatedDate: "2024-01-10",
			AssignedTo:  "Sales Team B",
			Value:       599,
			Notes:       "Large enterprise client",
		},
		{
			ID:          "3",
			ClientName:  "Mike Chen",
			ProductName: "Vobb OS Lite",
			Stage:       domain.StageContacted,
			CreatedDate: "2024-01-12",
			AssignedTo:  "Sales Team A",
			Value:       99,
			Notes:       "Startup looking for affordable solution",
		},
		{
			ID:          "4",
			ClientName:  "Emily Davis",
			ProductName: "Vobb Security Suite",
			Stage:       domain.StageDealFinalized,
			CreatedDate: "2024-01-08",
			AssignedTo:  "Sales Team C",
			Value:       199,
			Notes:       "Security-focused client",
		},
	}
}
