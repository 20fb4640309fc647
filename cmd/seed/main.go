package main

import (
	"github.com/rephone-next/internal/config"
	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/logger"
	"github.com/rephone-next/internal/models"
	"github.com/rephone-next/internal/repository"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	repo := repository.NewProductRepository(models.DB)
	for _, product := range seedProducts() {
		existing, err := repo.GetByID(product.ID)
		if err != nil {
			stdLog.Printf("Failed to check product %s: %v", product.ID, err)
			continue
		}
		if existing != nil {
			stdLog.Printf("Product already exists: %s", product.ID)
			continue
		}
		if err := repo.Upsert(&product); err != nil {
			stdLog.Printf("Failed to create product %s: %v", product.ID, err)
		} else {
			stdLog.Printf("Created product: %s (%s)", product.ID, product.Name)
		}
	}
}

func money(value float64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromFloat(value))
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "iPhone 13 Pro",
			Brand:         "Apple",
			PriceAmount:   money(699),
			OriginalPrice: money(999),
			Rating:        4.8,
			Reviews:       124,
			Images: models.StringArray{
				"/images/phone/i14promax.jpg",
				"/images/phone/i14promax1.jpg",
				"/images/phone/i14promax2.jpg",
				"/images/phone/i14promax3.jpg",
				"/images/phone/i14promax4.jpg",
			},
			Condition:   constants.ConditionExcellent,
			Storage:     "128GB",
			Color:       "Graphite",
			Category:    "iPhone",
			Description: "The iPhone 13 Pro delivers exceptional performance with the A15 Bionic chip, ProRAW photography capabilities, and a stunning Super Retina XDR display with ProMotion technology.",
			SpecsJSON: models.JSON{
				"display": map[string]interface{}{
					"size":       "6.1 inches",
					"type":       "Super Retina XDR OLED",
					"resolution": "2532 x 1170 pixels",
					"features":   []string{"ProMotion 120Hz", "HDR10", "Dolby Vision"},
				},
				"performance": map[string]interface{}{
					"processor": "A15 Bionic chip",
					"ram":       "6GB",
					"storage":   "128GB",
					"os":        "iOS 15 (upgradable)",
				},
				"camera": map[string]interface{}{
					"rear":     "Triple 12MP (Main, Ultra Wide, Telephoto)",
					"front":    "12MP TrueDepth",
					"features": []string{"ProRAW", "ProRes video", "Cinematic mode", "Night mode"},
				},
				"battery": map[string]interface{}{
					"capacity": "3095 mAh",
					"charging": "20W wired, 15W MagSafe wireless",
					"life":     "Up to 22 hours video playback",
				},
				"connectivity": map[string]interface{}{
					"network":   "5G, 4G LTE",
					"wifi":      "Wi-Fi 6",
					"bluetooth": "Bluetooth 5.0",
					"other":     []string{"Lightning port", "Face ID", "MagSafe"},
				},
				"physical": map[string]interface{}{
					"dimensions": "146.7 x 71.5 x 7.65 mm",
					"weight":     "203g",
					"materials":  "Stainless steel frame, Ceramic Shield front",
					"colors":     []string{"Graphite", "Gold", "Silver", "Sierra Blue", "Alpine Green"},
				},
			},
			Warranty:   "12 months",
			InStock:    true,
			StockCount: 15,
			Features: models.StringArray{
				"ProMotion 120Hz display",
				"A15 Bionic chip",
				"Pro camera system",
				"5G connectivity",
				"Face ID",
				"MagSafe compatible",
			},
			SortOrder: 1,
		},
		{
			ID:            "2",
			Name:          "Galaxy S22 Ultra",
			Brand:         "Samsung",
			PriceAmount:   money(599),
			OriginalPrice: money(899),
			Rating:        4.7,
			Reviews:       89,
			Images: models.StringArray{
				"/images/phone/s23ultra.jpg",
				"/images/phone/s23ultra1.jpg",
				"/images/phone/s23ultra2.jpg",
				"/images/phone/s23ultra3.jpg",
			},
			Condition:   constants.ConditionVeryGood,
			Storage:     "256GB",
			Color:       "Phantom Black",
			Category:    "Samsung",
			Description: "The Galaxy S22 Ultra combines the best of Galaxy Note and Galaxy S series, featuring the built-in S Pen, advanced camera system, and powerful performance.",
			SpecsJSON: models.JSON{
				"display": map[string]interface{}{
					"size":       "6.8 inches",
					"type":       "Dynamic AMOLED 2X",
					"resolution": "3088 x 1440 pixels",
					"features":   []string{"120Hz adaptive refresh rate", "HDR10+", "Always-on display"},
				},
				"performance": map[string]interface{}{
					"processor": "Snapdragon 8 Gen 1",
					"ram":       "8GB",
					"storage":   "256GB",
					"os":        "Android 12 (One UI 4.1)",
				},
				"camera": map[string]interface{}{
					"rear":     "Quad camera: 108MP main, 12MP ultra-wide, 10MP telephoto (3x), 10MP periscope (10x)",
					"front":    "40MP",
					"features": []string{"100x Space Zoom", "8K video recording", "Night mode", "Pro mode"},
				},
				"battery": map[string]interface{}{
					"capacity": "5000 mAh",
					"charging": "45W wired, 15W wireless, 4.5W reverse wireless",
					"life":     "Up to 26 hours video playback",
				},
				"connectivity": map[string]interface{}{
					"network":   "5G, 4G LTE",
					"wifi":      "Wi-Fi 6E",
					"bluetooth": "Bluetooth 5.2",
					"other":     []string{"USB-C", "Fingerprint (ultrasonic)", "S Pen"},
				},
				"physical": map[string]interface{}{
					"dimensions": "163.3 x 77.9 x 8.9 mm",
					"weight":     "228g",
					"materials":  "Aluminum frame, Gorilla Glass Victus+",
					"colors":     []string{"Phantom Black", "Phantom White", "Burgundy", "Green"},
				},
			},
			Warranty:   "12 months",
			InStock:    true,
			StockCount: 8,
			Features: models.StringArray{
				"Built-in S Pen",
				"108MP camera",
				"100x Space Zoom",
				"5000mAh battery",
				"120Hz display",
				"5G ready",
			},
			SortOrder: 2,
		},
		{
			ID:            "3",
			Name:          "Pixel 7 Pro",
			Brand:         "Google",
			PriceAmount:   money(449),
			OriginalPrice: money(699),
			Rating:        4.6,
			Reviews:       67,
			Images: models.StringArray{
				"/images/phone/pixel7pro.jpg",
				"/images/phone/pixel7pro1.jpg",
			},
			Condition:   constants.ConditionExcellent,
			Storage:     "128GB",
			Color:       "Snow",
			Category:    "Google",
			Description: "The Pixel 7 Pro brings Google's best camera yet, the Tensor G2 chip, and a pure Android experience with years of guaranteed updates.",
			SpecsJSON: models.JSON{
				"display": map[string]interface{}{
					"size":       "6.7 inches",
					"type":       "LTPO AMOLED",
					"resolution": "3120 x 1440 pixels",
					"features":   []string{"120Hz refresh rate", "HDR10+", "Always-on display"},
				},
				"performance": map[string]interface{}{
					"processor": "Google Tensor G2",
					"ram":       "12GB",
					"storage":   "128GB",
					"os":        "Android 13",
				},
				"camera": map[string]interface{}{
					"rear":     "Triple: 50MP main, 12MP ultra-wide, 48MP telephoto (5x)",
					"front":    "10.8MP",
					"features": []string{"Super Res Zoom 30x", "Night Sight", "Magic Eraser", "Real Tone"},
				},
				"battery": map[string]interface{}{
					"capacity": "5000 mAh",
					"charging": "30W wired, 23W wireless",
					"life":     "Beyond 24-hour battery life",
				},
				"connectivity": map[string]interface{}{
					"network":   "5G, 4G LTE",
					"wifi":      "Wi-Fi 6E",
					"bluetooth": "Bluetooth 5.2",
					"other":     []string{"USB-C", "Fingerprint (under display)", "Face Unlock"},
				},
				"physical": map[string]interface{}{
					"dimensions": "162.9 x 76.6 x 8.9 mm",
					"weight":     "212g",
					"materials":  "Aluminum frame, Gorilla Glass Victus",
					"colors":     []string{"Snow", "Obsidian", "Hazel"},
				},
			},
			Warranty:   "12 months",
			InStock:    true,
			StockCount: 12,
			Features: models.StringArray{
				"Tensor G2 chip",
				"50MP camera system",
				"Super Res Zoom 30x",
				"Pure Android experience",
				"120Hz display",
				"5G connectivity",
			},
			SortOrder: 3,
		},
		{
			ID:            "4",
			Name:          "OnePlus 10 Pro",
			Brand:         "OnePlus",
			PriceAmount:   money(399),
			OriginalPrice: money(599),
			Rating:        4.5,
			Reviews:       45,
			Images: models.StringArray{
				"/images/phone/oneplus10pro.jpg",
			},
			Condition:   constants.ConditionGood,
			Storage:     "256GB",
			Color:       "Volcanic Black",
			Category:    "OnePlus",
			Description: "The OnePlus 10 Pro pairs Hasselblad-tuned cameras with flagship performance and blazing fast 80W charging.",
			SpecsJSON: models.JSON{
				"display": map[string]interface{}{
					"size":       "6.7 inches",
					"type":       "LTPO2 Fluid AMOLED",
					"resolution": "3216 x 1440 pixels",
					"features":   []string{"120Hz refresh rate", "HDR10+"},
				},
				"performance": map[string]interface{}{
					"processor": "Snapdragon 8 Gen 1",
					"ram":       "8GB",
					"storage":   "256GB",
					"os":        "Android 12 (OxygenOS 12.1)",
				},
				"camera": map[string]interface{}{
					"rear":     "Triple: 48MP main, 50MP ultra-wide, 8MP telephoto (3.3x)",
					"front":    "32MP",
					"features": []string{"Hasselblad color tuning", "10-bit color", "Night mode"},
				},
				"battery": map[string]interface{}{
					"capacity": "5000 mAh",
					"charging": "80W wired, 50W wireless",
					"life":     "Up to 20 hours video playback",
				},
				"connectivity": map[string]interface{}{
					"network":   "5G, 4G LTE",
					"wifi":      "Wi-Fi 6",
					"bluetooth": "Bluetooth 5.2",
					"other":     []string{"USB-C", "Fingerprint (under display)", "Alert slider"},
				},
				"physical": map[string]interface{}{
					"dimensions": "163.0 x 73.9 x 8.55 mm",
					"weight":     "201g",
					"materials":  "Aluminum frame, Gorilla Glass Victus",
					"colors":     []string{"Volcanic Black", "Emerald Forest"},
				},
			},
			Warranty:   "12 months",
			InStock:    true,
			StockCount: 6,
			Features: models.StringArray{
				"Hasselblad cameras",
				"80W fast charging",
				"120Hz display",
				"Snapdragon 8 Gen 1",
				"Alert slider",
				"5G ready",
			},
			SortOrder: 4,
		},
		{
			ID:            "5",
			Name:          "iPhone 12",
			Brand:         "Apple",
			PriceAmount:   money(379),
			OriginalPrice: money(699),
			Rating:        4.4,
			Reviews:       203,
			Images: models.StringArray{
				"/images/phone/iphone12.jpg",
			},
			Condition:   constants.ConditionFair,
			Storage:     "64GB",
			Color:       "Blue",
			Category:    "iPhone",
			Description: "The iPhone 12 offers the A14 Bionic chip, a Super Retina XDR display, and 5G at a budget-friendly price.",
			SpecsJSON: models.JSON{
				"display": map[string]interface{}{
					"size":       "6.1 inches",
					"type":       "Super Retina XDR OLED",
					"resolution": "2532 x 1170 pixels",
					"features":   []string{"HDR10", "Dolby Vision"},
				},
				"performance": map[string]interface{}{
					"processor": "A14 Bionic chip",
					"ram":       "4GB",
					"storage":   "64GB",
					"os":        "iOS 14 (upgradable)",
				},
				"camera": map[string]interface{}{
					"rear":     "Dual 12MP (Main, Ultra Wide)",
					"front":    "12MP TrueDepth",
					"features": []string{"Night mode", "Deep Fusion", "Smart HDR 3"},
				},
				"battery": map[string]interface{}{
					"capacity": "2815 mAh",
					"charging": "20W wired, 15W MagSafe wireless",
					"life":     "Up to 17 hours video playback",
				},
				"connectivity": map[string]interface{}{
					"network":   "5G, 4G LTE",
					"wifi":      "Wi-Fi 6",
					"bluetooth": "Bluetooth 5.0",
					"other":     []string{"Lightning port", "Face ID", "MagSafe"},
				},
				"physical": map[string]interface{}{
					"dimensions": "146.7 x 71.5 x 7.4 mm",
					"weight":     "164g",
					"materials":  "Aluminum frame, Ceramic Shield front",
					"colors":     []string{"Blue", "Black", "White", "Green", "Red", "Purple"},
				},
			},
			Warranty:   "12 months",
			InStock:    true,
			StockCount: 23,
			Features: models.StringArray{
				"A14 Bionic chip",
				"Super Retina XDR display",
				"5G connectivity",
				"Face ID",
				"MagSafe compatible",
			},
			SortOrder: 5,
		},
		{
			ID:            "6",
			Name:          "Pixel 6a",
			Brand:         "Google",
			PriceAmount:   money(249),
			OriginalPrice: money(449),
			Rating:        4.3,
			Reviews:       58,
			Images: models.StringArray{
				"/images/phone/pixel6a.jpg",
			},
			Condition:   constants.ConditionVeryGood,
			Storage:     "128GB",
			Color:       "Charcoal",
			Category:    "Google",
			Description: "The Pixel 6a packs the flagship Tensor chip and Google's renowned camera smarts into a compact, affordable package.",
			SpecsJSON: models.JSON{
				"display": map[string]interface{}{
					"size":       "6.1 inches",
					"type":       "OLED",
					"resolution": "2400 x 1080 pixels",
					"features":   []string{"60Hz refresh rate", "HDR"},
				},
				"performance": map[string]interface{}{
					"processor": "Google Tensor",
					"ram":       "6GB",
					"storage":   "128GB",
					"os":        "Android 12",
				},
				"camera": map[string]interface{}{
					"rear":     "Dual: 12.2MP main, 12MP ultra-wide",
					"front":    "8MP",
					"features": []string{"Night Sight", "Magic Eraser", "Real Tone"},
				},
				"battery": map[string]interface{}{
					"capacity": "4410 mAh",
					"charging": "18W wired",
					"life":     "Up to 24 hours",
				},
				"connectivity": map[string]interface{}{
					"network":   "5G, 4G LTE",
					"wifi":      "Wi-Fi 6E",
					"bluetooth": "Bluetooth 5.2",
					"other":     []string{"USB-C", "Fingerprint (under display)"},
				},
				"physical": map[string]interface{}{
					"dimensions": "152.2 x 71.8 x 8.9 mm",
					"weight":     "178g",
					"materials":  "Aluminum frame, Gorilla Glass 3",
					"colors":     []string{"Charcoal", "Chalk", "Sage"},
				},
			},
			Warranty:   "12 months",
			InStock:    false,
			StockCount: 0,
			Features: models.StringArray{
				"Tensor chip",
				"Night Sight camera",
				"Compact design",
				"5G connectivity",
			},
			SortOrder: 6,
		},
	}
}
