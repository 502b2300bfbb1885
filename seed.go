package main

// Static seed data for the storefront and the admin dashboard. The
// catalog below is the fallback dataset every store hydrates from when
// nothing has been persisted yet.

var seedProducts = []Product{
	{
		ID:            "1",
		Title:         "Cyber Nexus 2077",
		TitleKa:       "კიბერ ნექსუსი 2077",
		TitleRu:       "Кибер Нексус 2077",
		Description:   "Explore a vast open-world cyberpunk city filled with danger and adventure. Immerse yourself in a dystopian future where technology and humanity collide.",
		DescriptionKa: "გამოიკვლიეთ უზარმაზარი ღია სამყაროს კიბერპანკის ქალაქი, სავსე საფრთხით და თავგადასავლებით.",
		DescriptionRu: "Исследуйте огромный открытый мир киберпанк города, полный опасностей и приключений.",
		Price:         159.99,
		OriginalPrice: 199.99,
		Image:         "/games/cyber-nexus.jpg",
		Images:        []string{"/games/cyber-nexus.jpg", "/games/cyber-nexus.jpg", "/games/cyber-nexus.jpg"},
		Category:      CategoryRPG,
		Platform:      []Platform{PlatformPS5, PlatformXbox},
		Tags:          []Tag{TagBestseller, TagDiscount, TagTrending},
		Rating:        4.8,
		ReviewCount:   2453,
		InStock:       true,
		ReleaseDate:   "2025-11-15",
		Developer:     "Neon Studios",
		Publisher:     "Digital Dreams",
	},
	{
		ID:            "2",
		Title:         "Shadow Warriors: Legends",
		TitleKa:       "ჩრდილოვანი მეომრები: ლეგენდები",
		TitleRu:       "Воины Тени: Легенды",
		Description:   "Master the art of stealth and combat in feudal Japan. Become the ultimate ninja warrior and uncover ancient secrets.",
		DescriptionKa: "დაეუფლეთ ფარული მოქმედების და ბრძოლის ხელოვნებას ფეოდალურ იაპონიაში.",
		DescriptionRu: "Овладейте искусством скрытности и боя в феодальной Японии.",
		Price:         139.99,
		Image:         "/games/shadow-warriors.jpg",
		Images:        []string{"/games/shadow-warriors.jpg", "/games/shadow-warriors.jpg", "/games/shadow-warriors.jpg"},
		Category:      CategoryAction,
		Platform:      []Platform{PlatformPS4, PlatformPS5, PlatformXbox},
		Tags:          []Tag{TagNewRelease, TagFeatured, TagTrending},
		Rating:        4.9,
		ReviewCount:   1876,
		InStock:       true,
		ReleaseDate:   "2026-01-10",
		Developer:     "Ronin Games",
		Publisher:     "Eastern Wind",
	},
	{
		ID:            "3",
		Title:         "Starfield Odyssey",
		TitleKa:       "ვარსკვლავური ოდისეა",
		TitleRu:       "Звездная Одиссея",
		Description:   "Embark on an epic journey across the galaxy in this space exploration RPG. Discover new worlds and alien civilizations.",
		DescriptionKa: "დაიწყეთ ეპიკური მოგზაურობა გალაქტიკაში ამ კოსმოსური კვლევის RPG-ში.",
		DescriptionRu: "Отправьтесь в эпическое путешествие по галактике в этой космической RPG.",
		Price:         179.99,
		Image:         "/games/starfield-odyssey.jpg",
		Images:        []string{"/games/starfield-odyssey.jpg", "/games/starfield-odyssey.jpg", "/games/starfield-odyssey.jpg"},
		Category:      CategoryRPG,
		Platform:      []Platform{PlatformPS5, PlatformXbox},
		Tags:          []Tag{TagNewRelease, TagTrending},
		Rating:        4.7,
		ReviewCount:   3241,
		InStock:       true,
		ReleaseDate:   "2025-12-01",
		Developer:     "Cosmos Interactive",
		Publisher:     "Galaxy Games",
	},
	{
		ID:            "4",
		Title:         "Racing Thunder GT",
		TitleKa:       "რბოლის მეხი GT",
		TitleRu:       "Гром Гонок GT",
		Description:   "Experience the thrill of high-speed racing with realistic physics and stunning graphics.",
		DescriptionKa: "განიცადეთ მაღალსიჩქარიანი რბოლის აზარტი რეალისტური ფიზიკით.",
		DescriptionRu: "Испытайте острые ощущения от скоростных гонок с реалистичной физикой.",
		Price:         99.99,
		OriginalPrice: 129.99,
		Image:         "/games/racing-thunder.jpg",
		Images:        []string{"/games/racing-thunder.jpg", "/games/racing-thunder.jpg", "/games/racing-thunder.jpg"},
		Category:      CategorySports,
		Platform:      []Platform{PlatformPS4, PlatformPS5, PlatformXbox},
		Tags:          []Tag{TagDiscount, TagBestseller},
		Rating:        4.5,
		ReviewCount:   1543,
		InStock:       true,
		ReleaseDate:   "2025-09-20",
		Developer:     "Speed Demons",
		Publisher:     "Turbo Games",
	},
	{
		ID:            "5",
		Title:         "Empire Builders IV",
		TitleKa:       "იმპერიის მშენებლები IV",
		TitleRu:       "Строители Империи IV",
		Description:   "Build and manage your own civilization from ancient times to the modern era. Lead your people to glory.",
		DescriptionKa: "ააშენეთ და მართეთ საკუთარი ცივილიზაცია უძველესი დროიდან თანამედროვე ეპოქამდე.",
		DescriptionRu: "Стройте и управляйте своей цивилизацией от древних времен до современной эпохи.",
		Price:         119.99,
		Image:         "/games/empire-builders.jpg",
		Images:        []string{"/games/empire-builders.jpg", "/games/empire-builders.jpg", "/games/empire-builders.jpg"},
		Category:      CategoryStrategy,
		Platform:      []Platform{PlatformPS5, PlatformXbox},
		Tags:          []Tag{TagFeatured},
		Rating:        4.6,
		ReviewCount:   2187,
		InStock:       true,
		ReleaseDate:   "2025-10-15",
		Developer:     "Strategic Minds",
		Publisher:     "Grand Strategy",
	},
	{
		ID:            "6",
		Title:         "Dragon Quest: Eternal",
		TitleKa:       "დრაკონის ძიება: მარადიული",
		TitleRu:       "Поиск Дракона: Вечный",
		Description:   "A classic JRPG adventure with stunning visuals and epic storytelling. Save the kingdom from darkness.",
		DescriptionKa: "კლასიკური JRPG თავგადასავალი განსაცვიფრებელი ვიზუალით და ეპიკური მოთხრობით.",
		DescriptionRu: "Классическое JRPG приключение с потрясающей графикой и эпичным сюжетом.",
		Price:         149.99,
		Image:         "/games/dragon-quest.jpg",
		Images:        []string{"/games/dragon-quest.jpg", "/games/dragon-quest.jpg", "/games/dragon-quest.jpg"},
		Category:      CategoryRPG,
		Platform:      []Platform{PlatformPS4, PlatformPS5},
		Tags:          []Tag{TagBestseller, TagTrending},
		Rating:        4.9,
		ReviewCount:   4532,
		InStock:       true,
		ReleaseDate:   "2025-08-01",
		Developer:     "Fantasy Works",
		Publisher:     "Legend Games",
	},
	{
		ID:            "7",
		Title:         "Survival Island",
		TitleKa:       "გადარჩენის კუნძული",
		TitleRu:       "Остров Выживания",
		Description:   "Survive on a mysterious island with crafting, building, and exploration. Uncover the island's dark secrets.",
		DescriptionKa: "გადარჩით იდუმალ კუნძულზე ხელობით, მშენებლობით და კვლევით.",
		DescriptionRu: "Выживайте на загадочном острове, создавая, строя и исследуя.",
		Price:         79.99,
		Image:         "/games/survival-island.jpg",
		Images:        []string{"/games/survival-island.jpg", "/games/survival-island.jpg", "/games/survival-island.jpg"},
		Category:      CategoryAdventure,
		Platform:      []Platform{PlatformPS4, PlatformPS5, PlatformXbox},
		Tags:          []Tag{TagFeatured},
		Rating:        4.4,
		ReviewCount:   987,
		InStock:       true,
		ReleaseDate:   "2025-07-10",
		Developer:     "Wilderness Studios",
		Publisher:     "Outdoor Games",
	},
	{
		ID:            "8",
		Title:         "Football Champions 2026",
		TitleKa:       "ფეხბურთის ჩემპიონები 2026",
		TitleRu:       "Чемпионы Футбола 2026",
		Description:   "The most realistic football simulation with updated teams and leagues. Experience the beautiful game.",
		DescriptionKa: "ყველაზე რეალისტური ფეხბურთის სიმულატორი განახლებული გუნდებითა და ლიგებით.",
		DescriptionRu: "Самый реалистичный футбольный симулятор с обновленными командами и лигами.",
		Price:         169.99,
		OriginalPrice: 199.99,
		Image:         "/games/football-champions.jpg",
		Images:        []string{"/games/football-champions.jpg", "/games/football-champions.jpg", "/games/football-champions.jpg"},
		Category:      CategorySports,
		Platform:      []Platform{PlatformPS4, PlatformPS5, PlatformXbox},
		Tags:          []Tag{TagNewRelease, TagDiscount},
		Rating:        4.3,
		ReviewCount:   2876,
		InStock:       true,
		ReleaseDate:   "2026-01-20",
		Developer:     "Sports Interactive",
		Publisher:     "Athletic Games",
	},
	{
		ID:            "9",
		Title:         "City Life Simulator",
		TitleKa:       "ქალაქის ცხოვრების სიმულატორი",
		TitleRu:       "Симулятор Городской Жизни",
		Description:   "Build and manage your dream city with detailed simulation mechanics. Create the perfect urban utopia.",
		DescriptionKa: "ააშენეთ და მართეთ თქვენი ოცნების ქალაქი დეტალური სიმულაციის მექანიზმებით.",
		DescriptionRu: "Стройте и управляйте городом своей мечты с детальной механикой симуляции.",
		Price:         89.99,
		Image:         "/games/city-life.jpg",
		Images:        []string{"/games/city-life.jpg", "/games/city-life.jpg", "/games/city-life.jpg"},
		Category:      CategorySimulation,
		Platform:      []Platform{PlatformPS5, PlatformXbox},
		Tags:          []Tag{TagFeatured},
		Rating:        4.7,
		ReviewCount:   1654,
		InStock:       true,
		ReleaseDate:   "2025-06-15",
		Developer:     "Urban Dreams",
		Publisher:     "Sim World",
	},
	{
		ID:            "10",
		Title:         "Dungeon Crawler X",
		TitleKa:       "მიწისქვეშეთის მკვლევარი X",
		TitleRu:       "Исследователь Подземелий X",
		Description:   "Explore procedurally generated dungeons in this roguelike action game. Every run is unique.",
		DescriptionKa: "გამოიკვლიეთ პროცედურულად გენერირებული მიწისქვეშეთები ამ როგლაიკ ექშენ თამაშში.",
		DescriptionRu: "Исследуйте процедурно генерируемые подземелья в этом roguelike экшене.",
		Price:         59.99,
		OriginalPrice: 79.99,
		Image:         "/games/dungeon-crawler.jpg",
		Images:        []string{"/games/dungeon-crawler.jpg", "/games/dungeon-crawler.jpg", "/games/dungeon-crawler.jpg"},
		Category:      CategoryAction,
		Platform:      []Platform{PlatformPS4, PlatformXbox},
		Tags:          []Tag{TagDiscount},
		Rating:        4.6,
		ReviewCount:   876,
		InStock:       false,
		ReleaseDate:   "2025-05-01",
		Developer:     "Indie Rogues",
		Publisher:     "Pixel Games",
	},
}

var seedGiftCards = []GiftCard{
	{ID: "gc1", Value: 50, Code: "GV50-ABCD-1234", Status: GiftCardActive, CreatedAt: "2026-01-15"},
	{ID: "gc2", Value: 100, Code: "GV100-EFGH-5678", Status: GiftCardUsed, CreatedAt: "2026-01-10", UsedAt: "2026-01-20", UsedBy: "user1"},
	{ID: "gc3", Value: 200, Code: "GV200-IJKL-9012", Status: GiftCardActive, CreatedAt: "2026-01-25"},
	{ID: "gc4", Value: 50, Code: "GV50-MNOP-3456", Status: GiftCardExpired, CreatedAt: "2025-12-01"},
	{ID: "gc5", Value: 100, Code: "GV100-QRST-7890", Status: GiftCardActive, CreatedAt: "2026-01-28"},
}

var seedUsers = []StoreUser{
	{ID: "u1", Username: "GamerPro99", Email: "gamer@example.com", RegisteredAt: "2025-06-15", TotalPurchases: 12, TotalSpent: 1450.50, Status: StoreUserActive},
	{ID: "u2", Username: "NightOwl", Email: "night@example.com", RegisteredAt: "2025-08-20", TotalPurchases: 5, TotalSpent: 420.00, Status: StoreUserActive},
	{ID: "u3", Username: "CyberKnight", Email: "cyber@example.com", RegisteredAt: "2025-10-01", TotalPurchases: 8, TotalSpent: 890.25, Status: StoreUserActive},
	{ID: "u4", Username: "ShadowHunter", Email: "shadow@example.com", RegisteredAt: "2025-11-10", TotalPurchases: 3, TotalSpent: 210.00, Status: StoreUserSuspended},
	{ID: "u5", Username: "DragonSlayer", Email: "dragon@example.com", RegisteredAt: "2025-12-05", TotalPurchases: 15, TotalSpent: 2100.75, Status: StoreUserActive},
	{ID: "u6", Username: "StormRider", Email: "storm@example.com", RegisteredAt: "2026-01-01", TotalPurchases: 2, TotalSpent: 180.00, Status: StoreUserActive},
	{ID: "u7", Username: "BannedUser", Email: "banned@example.com", RegisteredAt: "2025-09-15", TotalPurchases: 1, TotalSpent: 59.99, Status: StoreUserBanned},
}

var seedOrders = []Order{
	{ID: "o1", UserID: "u1", Username: "GamerPro99", ProductID: "1", ProductTitle: "Cyber Nexus 2077", Platform: "PS5", Price: 159.99, Status: OrderCompleted, CreatedAt: "2026-01-28", PaymentMethod: "Card"},
	{ID: "o2", UserID: "u5", Username: "DragonSlayer", ProductID: "6", ProductTitle: "Dragon Quest: Eternal", Platform: "PS5", Price: 149.99, Status: OrderCompleted, CreatedAt: "2026-01-27", PaymentMethod: "PayPal"},
	{ID: "o3", UserID: "u2", Username: "NightOwl", ProductID: "2", ProductTitle: "Shadow Warriors: Legends", Platform: "Xbox", Price: 139.99, Status: OrderPending, CreatedAt: "2026-01-29", PaymentMethod: "Card"},
	{ID: "o4", UserID: "u3", Username: "CyberKnight", ProductID: "4", ProductTitle: "Racing Thunder GT", Platform: "PS4", Price: 99.99, Status: OrderCompleted, CreatedAt: "2026-01-26", PaymentMethod: "Gift Card"},
	{ID: "o5", UserID: "u1", Username: "GamerPro99", ProductID: "3", ProductTitle: "Starfield Odyssey", Platform: "Xbox", Price: 179.99, Status: OrderRefunded, CreatedAt: "2026-01-20", PaymentMethod: "Card"},
	{ID: "o6", UserID: "u6", Username: "StormRider", ProductID: "7", ProductTitle: "Survival Island", Platform: "PS5", Price: 79.99, Status: OrderCompleted, CreatedAt: "2026-01-25", PaymentMethod: "PayPal"},
	{ID: "o7", UserID: "u4", Username: "ShadowHunter", ProductID: "10", ProductTitle: "Dungeon Crawler X", Platform: "PS4", Price: 59.99, Status: OrderCancelled, CreatedAt: "2026-01-15", PaymentMethod: "Card"},
}

// seedPurchases is the demo purchase history a fresh user account
// starts with.
var seedPurchases = []Purchase{
	{
		ID:            "p1",
		ProductID:     "1",
		ProductTitle:  "Cyber Nexus 2077",
		ProductImage:  "/games/cyber-nexus.jpg",
		Platform:      PlatformPS5,
		Price:         159.99,
		OriginalPrice: 199.99,
		PurchaseDate:  "2025-12-15T10:30:00Z",
		DownloadKey:   "CYBER-XXXX-YYYY-ZZZZ",
	},
	{
		ID:           "p2",
		ProductID:    "2",
		ProductTitle: "Shadow Warriors: Legends",
		ProductImage: "/games/shadow-warriors.jpg",
		Platform:     PlatformPS5,
		Price:        139.99,
		PurchaseDate: "2025-11-20T14:45:00Z",
		DownloadKey:  "SHADOW-AAAA-BBBB-CCCC",
	},
	{
		ID:            "p3",
		ProductID:     "4",
		ProductTitle:  "Racing Thunder GT",
		ProductImage:  "/games/racing-thunder.jpg",
		Platform:      PlatformXbox,
		Price:         99.99,
		OriginalPrice: 129.99,
		PurchaseDate:  "2025-10-05T09:15:00Z",
		DownloadKey:   "RACING-DDDD-EEEE-FFFF",
	},
}
