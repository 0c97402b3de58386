package serviceImp

import "agrow/entities"

func DefaultCatalog() []entities.Product {
	return []entities.Product{
		{
			ID: "p1", Name: "Organic Neem Oil", Type: "organic", Price: 450,
			Image:       "https://images.unsplash.com/photo-1628352081506-83c43123ed6d?auto=format&fit=crop&q=80&w=200",
			Description: "Natural pest control and fungicide.", Category: "Protection",
		},
		{
			ID: "p2", Name: "High-Nitrogen Urea", Type: "chemical", Price: 800,
			Image:       "https://images.unsplash.com/photo-1585314062340-f1a5a7c9328d?auto=format&fit=crop&q=80&w=200",
			Description: "Essential mineral for leafy growth.", Category: "Fertilizer",
		},
		{
			ID: "p3", Name: "Trace Minerals Mix", Type: "mineral", Price: 350,
			Image:       "https://images.unsplash.com/photo-1592919016334-5393c833ebba?auto=format&fit=crop&q=80&w=200",
			Description: "Micronutrients for root health.", Category: "Nutrients",
		},
		{
			ID: "p4", Name: "Bio-Fungicide X1", Type: "organic", Price: 1200,
			Image:       "https://images.unsplash.com/photo-1589152144820-692b189e0b34?auto=format&fit=crop&q=80&w=200",
			Description: "Advanced fungal control for organic farms.", Category: "Protection",
		},
	}
}
