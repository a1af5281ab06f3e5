package content

import (
	"time"

	"github.com/shopspring/decimal"
)

var catalogCreated = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var products = []CoffeeProduct{
	{
		ID:             "robusta-premium-grade-1",
		Name:           "Premium Robusta Grade 1",
		Slug:           "premium-robusta-grade-1",
		Description:    "Premium Vietnamese Robusta coffee beans with exceptional quality and rich, bold flavor profile. Sourced from the Central Highlands of Vietnam, these beans offer excellent crema and are perfect for espresso blends.",
		Origin:         "Dak Lak Province, Vietnam",
		Processing:     "washed",
		Variety:        "Robusta",
		Grade:          "Grade 1",
		CuppingScore:   82,
		Aroma:          "Earthy, nutty with hints of chocolate",
		Flavor:         "Bold, full-bodied with low acidity and bitter-sweet notes",
		Acidity:        "Low",
		Body:           "Full",
		Certifications: []string{"Organic", "Fair Trade", "Rainforest Alliance"},
		HarvestSeason:  "October - February",
		Moisture:       "12.5%",
		DefectRate:     "<3%",
		MinimumOrder:   "1 container (19.2 tons)",
		PricePerKg:     decimal.RequireFromString("3.85"),
		Images: []string{
			"/images/products/robusta-premium-1.jpg",
			"/images/products/robusta-premium-2.jpg",
			"/images/products/robusta-premium-3.jpg",
		},
		Specifications: []Spec{
			{Name: "Screen Size", Value: "18+ (75%), 16+ (20%), Below 16 (5%)"},
			{Name: "Moisture", Value: "12.5% max"},
			{Name: "Foreign Matter", Value: "0.1% max"},
			{Name: "Black/Broken", Value: "2% max"},
			{Name: "Immature", Value: "2% max"},
			{Name: "Packaging", Value: "60kg jute bags or 1000kg big bags"},
			{Name: "Container Load", Value: "19.2 tons (320 bags of 60kg)"},
			{Name: "Shelf Life", Value: "12 months in proper storage"},
		},
		Featured:  true,
		Available: true,
		CreatedAt: catalogCreated,
		UpdatedAt: catalogCreated,
	},
	{
		ID:             "arabica-honey-processed",
		Name:           "Arabica Honey Processed",
		Slug:           "arabica-honey-processed",
		Description:    "Exceptional honey-processed Arabica coffee from the mountainous regions of Vietnam. This unique processing method creates a sweet, complex flavor profile with bright acidity and floral notes.",
		Origin:         "Lam Dong Province, Vietnam",
		Processing:     "honey",
		Variety:        "Arabica Catimor",
		Grade:          "Specialty Grade",
		CuppingScore:   86,
		Aroma:          "Floral, fruity with honey sweetness",
		Flavor:         "Complex, sweet with bright acidity and citrus notes",
		Acidity:        "Bright",
		Body:           "Medium",
		Certifications: []string{"Organic", "Specialty Coffee Association"},
		HarvestSeason:  "November - March",
		Moisture:       "11.5%",
		DefectRate:     "<2%",
		MinimumOrder:   "5 tons",
		PricePerKg:     decimal.RequireFromString("6.50"),
		Images: []string{
			"/images/products/arabica-honey-1.jpg",
			"/images/products/arabica-honey-2.jpg",
			"/images/products/arabica-honey-3.jpg",
		},
		Specifications: []Spec{
			{Name: "Screen Size", Value: "17+ (80%), 16+ (15%), Below 16 (5%)"},
			{Name: "Moisture", Value: "11.5% max"},
			{Name: "Foreign Matter", Value: "0.05% max"},
			{Name: "Defects", Value: "Max 5 defects per 300g sample"},
			{Name: "Altitude", Value: "1200-1600m above sea level"},
			{Name: "Packaging", Value: "60kg jute bags with GrainPro liner"},
			{Name: "Container Load", Value: "19.2 tons (320 bags of 60kg)"},
			{Name: "Shelf Life", Value: "18 months in proper storage"},
		},
		Featured:  true,
		Available: true,
		CreatedAt: catalogCreated,
		UpdatedAt: catalogCreated,
	},
	{
		ID:             "robusta-natural-processed",
		Name:           "Robusta Natural Processed",
		Slug:           "robusta-natural-processed",
		Description:    "Sun-dried natural processed Robusta coffee beans with intense flavor and full body. Perfect for espresso blends and instant coffee production.",
		Origin:         "Gia Lai Province, Vietnam",
		Processing:     "natural",
		Variety:        "Robusta",
		Grade:          "Grade 2",
		CuppingScore:   79,
		Aroma:          "Earthy, woody with chocolate undertones",
		Flavor:         "Bold, intense with low acidity and bitter notes",
		Acidity:        "Very Low",
		Body:           "Full",
		Certifications: []string{"UTZ Certified", "HACCP"},
		HarvestSeason:  "October - January",
		Moisture:       "13%",
		DefectRate:     "<5%",
		MinimumOrder:   "1 container (19.2 tons)",
		PricePerKg:     decimal.RequireFromString("3.20"),
		Images: []string{
			"/images/products/robusta-natural-1.jpg",
			"/images/products/robusta-natural-2.jpg",
		},
		Specifications: []Spec{
			{Name: "Screen Size", Value: "16+ (70%), 14+ (25%), Below 14 (5%)"},
			{Name: "Moisture", Value: "13% max"},
			{Name: "Foreign Matter", Value: "0.2% max"},
			{Name: "Black/Broken", Value: "5% max"},
			{Name: "Packaging", Value: "60kg jute bags"},
			{Name: "Container Load", Value: "19.2 tons (320 bags of 60kg)"},
			{Name: "Shelf Life", Value: "12 months in proper storage"},
		},
		Featured:  false,
		Available: true,
		CreatedAt: catalogCreated,
		UpdatedAt: catalogCreated,
	},
	{
		ID:             "specialty-geisha-arabica",
		Name:           "Specialty Geisha Arabica",
		Slug:           "specialty-geisha-arabica",
		Description:    "Rare and exceptional Geisha variety Arabica coffee from high-altitude farms in Vietnam. Known for its distinctive floral aroma, tea-like body, and complex flavor profile that has won international cupping competitions.",
		Origin:         "Da Lat, Lam Dong Province, Vietnam",
		Processing:     "washed",
		Variety:        "Geisha",
		Grade:          "Specialty Grade",
		CuppingScore:   92,
		Aroma:          "Intense floral, jasmine, bergamot",
		Flavor:         "Complex, tea-like, bright acidity with tropical fruit notes",
		Acidity:        "Bright",
		Body:           "Light to Medium",
		Certifications: []string{"Specialty Coffee Association", "Organic", "Single Origin"},
		HarvestSeason:  "December - February",
		Moisture:       "10.5%",
		DefectRate:     "<1%",
		MinimumOrder:   "1 ton",
		PricePerKg:     decimal.RequireFromString("25.00"),
		Images: []string{
			"/images/products/specialty-geisha-1.jpg",
			"/images/products/specialty-geisha-2.jpg",
			"/images/products/specialty-geisha-3.jpg",
		},
		Specifications: []Spec{
			{Name: "Screen Size", Value: "18+ (90%), 17+ (8%), Below 17 (2%)"},
			{Name: "Moisture", Value: "10.5% max"},
			{Name: "Foreign Matter", Value: "0.01% max"},
			{Name: "Defects", Value: "Max 2 defects per 300g sample"},
			{Name: "Altitude", Value: "1500-1800m above sea level"},
			{Name: "Packaging", Value: "30kg vacuum-sealed bags with valve"},
			{Name: "Container Load", Value: "Custom packaging available"},
			{Name: "Shelf Life", Value: "24 months in proper storage"},
		},
		Featured:  true,
		Available: true,
		CreatedAt: catalogCreated,
		UpdatedAt: catalogCreated,
	},
}

var posts = []Post{
	{
		ID:            "vietnam-coffee-export-trends-2024",
		Title:         "Vietnam Coffee Export Trends 2024: Market Insights and Opportunities",
		Slug:          "vietnam-coffee-export-trends-2024",
		Excerpt:       "Explore the latest trends in Vietnam coffee exports, market opportunities, and what global buyers should know about sourcing premium Vietnamese coffee in 2024.",
		Content:       "Vietnam remains the world's largest Robusta producer and the second largest coffee exporter overall. Demand for traceable, certified lots keeps growing among European and North American roasters.\n\nSpecialty Arabica from Lam Dong and honey-processed lots are the fastest growing segment of our export book, while washed Robusta Grade 1 continues to anchor espresso blends worldwide.",
		FeaturedImage: "/images/blog/vietnam-coffee-trends-2024.jpg",
		Category:      "Market Analysis",
		Tags:          []string{"Vietnam Coffee", "Export Trends", "Market Analysis", "Coffee Trade"},
		Author:        "The Great Beans Team",
		PublishedAt:   day(2024, time.January, 20),
		UpdatedAt:     day(2024, time.January, 20),
		ReadingTime:   8,
		Featured:      true,
		Published:     true,
	},
	{
		ID:            "sustainable-coffee-farming-practices",
		Title:         "Sustainable Coffee Farming: Our Commitment to Environmental Excellence",
		Slug:          "sustainable-coffee-farming-practices",
		Excerpt:       "Learn about our sustainable farming practices and how we are contributing to environmental conservation while producing premium coffee.",
		Content:       "Our partner farms follow certified sustainable agriculture practices that protect soil, water and biodiversity.\n\nShade trees, organic composting and water recycling at our wet mills reduce the footprint of every bag we ship.",
		FeaturedImage: "/images/blog/sustainable-farming.jpg",
		Category:      "Sustainability",
		Tags:          []string{"Sustainable Farming", "Environment", "Coffee Production", "Organic"},
		Author:        "The Great Beans Team",
		PublishedAt:   day(2024, time.January, 18),
		UpdatedAt:     day(2024, time.January, 18),
		ReadingTime:   6,
		Featured:      true,
		Published:     true,
	},
}

var certifications = []Certification{
	{
		ID:                "organic-certification",
		Name:              "Organic Certification",
		Issuer:            "USDA Organic",
		Description:       "Certified organic coffee production without synthetic pesticides or fertilizers",
		Logo:              "/images/certifications/usda-organic.png",
		ValidUntil:        day(2025, time.December, 31),
		CertificateNumber: "ORG-2024-001",
	},
	{
		ID:                "fair-trade",
		Name:              "Fair Trade Certified",
		Issuer:            "Fair Trade USA",
		Description:       "Ensuring fair wages and working conditions for coffee farmers",
		Logo:              "/images/certifications/fair-trade.png",
		ValidUntil:        day(2025, time.June, 30),
		CertificateNumber: "FT-2024-002",
	},
	{
		ID:                "rainforest-alliance",
		Name:              "Rainforest Alliance Certified",
		Issuer:            "Rainforest Alliance",
		Description:       "Promoting sustainable agriculture and forest conservation",
		Logo:              "/images/certifications/rainforest-alliance.png",
		ValidUntil:        day(2025, time.September, 15),
		CertificateNumber: "RA-2024-003",
	},
}

var company = CompanyInfo{
	Name:          "The Great Beans",
	LegalName:     "The Great Beans Coffee Export Co., Ltd.",
	AlternateName: "TGB",
	Founded:       "2018",
	Description:   "Premium Vietnamese coffee exporter specializing in high-quality green and roasted Robusta and Arabica coffee beans for global markets.",
	Address:       "Central Highlands, Vietnam",
	Region:        "Central Highlands",
	Country:       "VN",
	Phone:         "+84-xxx-xxx-xxx",
	Email:         "info@thegreatbeans.vn",
	Website:       "https://thegreatbeans.vn",
	Logo:          "/static/logo.svg",
	Employees:     "50-100",
	AnnualRevenue: "$5-10 million",
	ExportCountries: []string{
		"United States", "Germany", "Italy", "Japan", "South Korea",
		"Singapore", "Australia", "Canada", "Netherlands", "Belgium",
	},
	Certifications: []string{"Organic", "Fair Trade", "Rainforest Alliance", "UTZ Certified"},
	Capacity: ProductionCapacity{
		DailyCherry:  "120+ tons",
		DailyBeans:   "96+ tons",
		AnnualExport: "2000+ tons",
	},
	Social: []SocialLink{
		{Network: "linkedin", URL: "https://www.linkedin.com/company/thegreatbeans"},
		{Network: "facebook", URL: "https://www.facebook.com/thegreatbeans"},
		{Network: "twitter", URL: "https://twitter.com/thegreatbeans"},
	},
}
