package service

import "github.com/Ahcene43/WAW/models"

// DefaultDocument returns the built-in configuration used when neither the
// remote document nor the local cache is available. Every call returns a
// fresh value.
func DefaultDocument() models.Document {
	return models.Document{
		Products: map[string]models.Product{
			"1": {
				Name:            "مودال 1",
				Price:           3300,
				Image:           "images/modal1.jpg",
				Description:     "تصميم مريح وعصري مع تفاصيل راقية تناسب جميع المناسبات",
				AvailableSizes:  []string{"S", "M", "L"},
				AvailableColors: []string{"كما في الصورة", "أبيض", "أسود", "أزرق"},
			},
		},
		DeliveryPrices: map[string]models.DeliveryPrice{
			models.PlaceholderRegion: {Home: 0, Desk: 0},
			"16 - الجزائر":           {Home: 500, Desk: 250},
		},
		Discounts: &models.Discounts{
			MinQuantityForDiscount: 2,
			DiscountPerItem:        300,
		},
		StoreInfo: &models.StoreInfo{
			Name:         "متجرك الإلكتروني",
			Tagline:      "أفخم الملابس للأطفال",
			PhoneNumbers: []string{"0671466489", "0551102155"},
		},
		AgeSizes: map[string]string{
			"3": "S", "4": "S", "5": "S",
			"6": "M", "7": "M",
			"8": "L", "9": "L",
			"10": "XL", "11": "XL", "12": "XL",
		},
		AvailableColors: []string{
			"كما في الصورة", "أبيض", "أسود", "رمادي", "أزرق",
			"أحمر", "أخضر", "زهري", "بنفسجي", "أصفر", "برتقالي", "ذهبي",
		},
		AvailableSizes: []string{"S", "M", "L", "XL", "XXL"},
	}
}
