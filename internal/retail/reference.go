//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

// Channels.
const (
	ChannelOnline  = "Online"
	ChannelOffline = "Offline"
)

// Region labels.
const (
	RegionNorth   = "Miền Bắc"
	RegionCentral = "Miền Trung"
	RegionSouth   = "Miền Nam"
	RegionOnline  = "Online"
)

// Store key prefixes.
const (
	OfflineStorePrefix = "STO-"
	OnlineStorePrefix  = "ONL-"
)

// Loyalty tiers.
const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// City is a city and the province it belongs to.
type City struct {
	Name     string
	Province string
}

var cities = []City{
	{"Hà Nội", "Hà Nội"},
	{"Hồ Chí Minh", "Hồ Chí Minh"},
	{"Đà Nẵng", "Đà Nẵng"},
	{"Hải Phòng", "Hải Phòng"},
	{"Cần Thơ", "Cần Thơ"},
	{"Biên Hòa", "Đồng Nai"},
	{"Nha Trang", "Khánh Hòa"},
	{"Huế", "Thừa Thiên Huế"},
	{"Vinh", "Nghệ An"},
	{"Buôn Ma Thuột", "Đắk Lắk"},
	{"Thủ Dầu Một", "Bình Dương"},
	{"Vũng Tàu", "Bà Rịa - Vũng Tàu"},
}

func setOf(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

var (
	northProvinces = setOf("Hà Nội", "Hải Phòng", "Quảng Ninh", "Hải Dương", "Hưng Yên",
		"Bắc Ninh", "Nam Định", "Thái Bình", "Ninh Bình", "Vĩnh Phúc", "Phú Thọ")
	centralProvinces = setOf("Đà Nẵng", "Thừa Thiên Huế", "Nghệ An", "Thanh Hóa", "Quảng Bình",
		"Quảng Trị", "Quảng Nam", "Khánh Hòa", "Bình Định", "Nha Trang")
	southProvinces = setOf("Hồ Chí Minh", "Đồng Nai", "Bình Dương", "Cần Thơ", "Bà Rịa - Vũng Tàu",
		"Bến Tre", "Long An", "Tây Ninh", "Vĩnh Long", "Tiền Giang", "An Giang")
)

// RegionOf classifies a store location. The province is preferred over the
// city; unknown places fall back to the south.
func RegionOf(city, province string) string {
	p := province
	if p == "" {
		p = city
	}
	switch {
	case northProvinces[p]:
		return RegionNorth
	case centralProvinces[p]:
		return RegionCentral
	case southProvinces[p]:
		return RegionSouth
	}
	return RegionSouth
}

// TierFor maps loyalty points to a tier.
func TierFor(points int) string {
	switch {
	case points < 1000:
		return TierBronze
	case points < 5000:
		return TierSilver
	case points < 15000:
		return TierGold
	}
	return TierPlatinum
}

// Category describes how products of one category are named and priced.
type Category struct {
	Name      string
	Brands    []string
	BaseNames []string
	Sizes     []string
	Units     []string
	MinPrice  int64
	MaxPrice  int64
}

var categories = []Category{
	{
		Name:      "Sữa bột",
		Brands:    []string{"Dielac", "Friso", "Aptamil", "Nan", "Glico"},
		BaseNames: []string{"Sữa bột công thức", "Sữa bột dinh dưỡng", "Sữa công thức"},
		Sizes:     []string{"400g", "800g", "1.2kg"},
		Units:     []string{"hộp", "lon"},
		MinPrice:  250_000,
		MaxPrice:  1_200_000,
	},
	{
		Name:      "Tã/bỉm",
		Brands:    []string{"Pampers", "Moony", "Merries", "Huggies", "Bobby"},
		BaseNames: []string{"Tã dán", "Tã quần"},
		Sizes:     []string{"NB", "S", "M", "L", "XL", "XXL"},
		Units:     []string{"bịch", "gói"},
		MinPrice:  120_000,
		MaxPrice:  600_000,
	},
	{
		Name:      "Đồ ăn dặm",
		Brands:    []string{"Heinz", "Gerber", "Nestlé", "Ella's"},
		BaseNames: []string{"Bột ăn dặm", "Bánh ăn dặm", "Pouch ăn dặm"},
		Sizes:     []string{"120g", "200g", "250g"},
		Units:     []string{"hộp", "gói"},
		MinPrice:  25_000,
		MaxPrice:  120_000,
	},
	{
		Name:      "Bình sữa & núm ti",
		Brands:    []string{"Pigeon", "Chicco", "Philips Avent", "Comotomo"},
		BaseNames: []string{"Bình sữa", "Núm ti"},
		Sizes:     []string{"120ml", "160ml", "240ml"},
		Units:     []string{"cái", "bộ"},
		MinPrice:  60_000,
		MaxPrice:  600_000,
	},
	{
		Name:      "Xe đẩy & ghế ngồi",
		Brands:    []string{"Aprica", "Joie", "Graco", "Combi"},
		BaseNames: []string{"Xe đẩy", "Ghế ngồi ô tô", "Ghế ăn dặm"},
		Sizes:     []string{"1 chiếc"},
		Units:     []string{"cái"},
		MinPrice:  800_000,
		MaxPrice:  7_000_000,
	},
	{
		Name:      "Đồ vệ sinh",
		Brands:    []string{"Kodomo", "Dnee", "Johnson's", "Lactacyd"},
		BaseNames: []string{"Sữa tắm gội", "Khăn ướt", "Bông tăm", "Nước giặt đồ em bé"},
		Sizes:     []string{"200ml", "500ml", "100 tờ"},
		Units:     []string{"chai", "gói"},
		MinPrice:  20_000,
		MaxPrice:  250_000,
	},
	{
		Name:      "Quần áo sơ sinh",
		Brands:    []string{"Carters", "Gap", "H&M", "Ninomaxx"},
		BaseNames: []string{"Bộ quần áo sơ sinh", "Bodysuit", "Bao tay chân"},
		Sizes:     []string{"S", "M", "L"},
		Units:     []string{"bộ"},
		MinPrice:  40_000,
		MaxPrice:  300_000,
	},
}

// Categories returns the product categories.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByName looks up a category.
func CategoryByName(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

var employeeRoles = []string{"Nhân viên bán hàng", "Thu ngân", "Quản lý cửa hàng", "Tư vấn viên"}

// OnlinePlatform is a marketplace pseudo-store.
type OnlinePlatform struct {
	ID   string
	Name string
}

// OnlinePlatforms are the fixed online pseudo-stores.
var OnlinePlatforms = []OnlinePlatform{
	{"ONL-SHOPEE", "Shopee"},
	{"ONL-LAZADA", "Lazada"},
	{"ONL-TIKTOK", "TikTok"},
	{"ONL-FACEBOOK", "Facebook"},
	{"ONL-WEBAPP", "Web-App"},
}
