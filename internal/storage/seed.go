package storage

import "github.com/kulina/kulina-ai/internal/domain"

// sampleMenus is the starter catalog loaded when the server runs with an
// empty store.
func sampleMenus() []domain.Menu {
	return []domain.Menu{
		{
			Name:        "Ayam Geprek Level 5",
			Description: "Ayam goreng crispy dengan sambal pedas level 5, nasi putih, dan lalapan",
			Price:       25000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Nasi Goreng Spesial",
			Description: "Nasi goreng dengan ayam, udang, telur, dan kerupuk",
			Price:       20000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Sate Ayam Madura",
			Description: "Sate ayam bumbu kacang dengan lontong dan sambal",
			Price:       30000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Bakso Urat",
			Description: "Bakso urat dengan mie dan bihun",
			Price:       18000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Mie Ayam",
			Description: "Mie ayam dengan pangsit dan bakso",
			Price:       15000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Gado-Gado",
			Description: "Sayuran rebus dengan bumbu kacang",
			Price:       12000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Pecel Lele",
			Description: "Lele goreng dengan sambal dan lalapan",
			Price:       22000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Rawon",
			Description: "Rawon daging dengan nasi dan kerupuk",
			Price:       28000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Soto Ayam",
			Description: "Soto ayam dengan nasi dan kerupuk",
			Price:       20000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Rendang",
			Description: "Rendang daging sapi dengan nasi putih",
			Price:       35000,
			Category:    "Makanan Utama",
			Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Es Kopi Susu",
			Description: "Kopi hitam dengan susu dan es batu",
			Price:       10000,
			Category:    "Minuman",
			Image:       "https://images.unsplash.com/photo-1517487881594-2787fef5ebf7?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Es Teh Manis",
			Description: "Teh manis dingin dengan es batu",
			Price:       5000,
			Category:    "Minuman",
			Image:       "https://images.unsplash.com/photo-1556679343-c7306c197ee3?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Es Jeruk",
			Description: "Jus jeruk segar dengan es batu",
			Price:       8000,
			Category:    "Minuman",
			Image:       "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Jus Alpukat",
			Description: "Jus alpukat dengan susu dan es",
			Price:       15000,
			Category:    "Minuman",
			Image:       "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Es Teler",
			Description: "Es teler dengan alpukat, nangka, dan kelapa",
			Price:       18000,
			Category:    "Minuman",
			Image:       "https://images.unsplash.com/photo-1556679343-c7306c197ee3?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Pisang Goreng",
			Description: "Pisang goreng crispy dengan gula",
			Price:       8000,
			Category:    "Snack",
			Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Tahu Goreng",
			Description: "Tahu goreng dengan bumbu kacang",
			Price:       10000,
			Category:    "Snack",
			Image:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
		{
			Name:        "Tempe Goreng",
			Description: "Tempe goreng crispy",
			Price:       8000,
			Category:    "Snack",
			Image:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400&h=400&fit=crop&q=80",
			Available:   true,
		},
	}
}
