package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seed data stands in for a real database. Timestamps are fixed and
// strictly descending in declaration order so list endpoints are
// deterministic.

var seedBase = time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type seedData struct {
	Categories []Category
	Products   []Product
	BlogPosts  []BlogPost
}

func defaultSeed() seedData {
	categories := []Category{
		{Name: "Giải trí", Slug: "giai-tri", Description: "Dịch vụ giải trí số", Icon: "fas fa-gamepad"},
		{Name: "Làm việc", Slug: "lam-viec", Description: "Công cụ làm việc", Icon: "fas fa-briefcase"},
		{Name: "Học tập", Slug: "hoc-tap", Description: "Tài liệu học tập", Icon: "fas fa-graduation-cap"},
		{Name: "Thế giới AI", Slug: "the-gioi-ai", Description: "Công cụ AI", Icon: "fas fa-robot"},
		{Name: "Thiết kế", Slug: "thiet-ke", Description: "Phần mềm thiết kế", Icon: "fas fa-palette"},
	}

	products := []Product{
		{
			Name:             "Netflix Premium 1 tháng",
			Slug:             "netflix-premium-1-thang",
			Description:      "Trải nghiệm Netflix Premium với chất lượng Ultra HD 4K, hỗ trợ xem trên 4 thiết bị cùng lúc. Thưởng thức hàng nghìn bộ phim, series độc quyền từ Netflix Originals và nội dung giải trí đa dạng.",
			ShortDescription: "Xem phim HD không giới hạn, 4 thiết bị cùng lúc",
			Price:            dec("129000"),
			SalePrice:        decPtr("99000"),
			ImageURL:         "https://images.unsplash.com/photo-1611162617474-5b21e879e113?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1611162618071-b39a2ec055fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
				"https://images.unsplash.com/photo-1626785774573-4b799315345d?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
				"https://images.unsplash.com/photo-1616530940355-351fabd9524b?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
				"https://images.unsplash.com/photo-1489599511686-bbedd1cb711d?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
			},
			CategoryID:  1,
			Featured:    true,
			InStock:     true,
			Rating:      dec("4.8"),
			ReviewCount: 128,
			Tags:        []string{"streaming", "phim", "series"},
			Features:    []string{"Chất lượng Ultra HD 4K", "Xem trên 4 thiết bị cùng lúc", "Tải về xem offline", "Netflix Originals độc quyền", "Không quảng cáo"},
		},
		{
			Name:             "YouTube Premium 1 tháng",
			Slug:             "youtube-premium-1-thang",
			Description:      "YouTube Premium mang đến trải nghiệm xem video hoàn hảo không quảng cáo, tải video offline và phát nhạc nền.",
			ShortDescription: "Xem video không quảng cáo, tải về offline",
			Price:            dec("79000"),
			ImageURL:         "https://images.unsplash.com/photo-1611162616305-c69b3fa7fbe0?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1611162616305-c69b3fa7fbe0?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
				"https://images.unsplash.com/photo-1521737451811-71c4484daa55?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
				"https://images.unsplash.com/photo-1521737711867-e3b97375f902?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
			},
			CategoryID:  1,
			Featured:    true,
			InStock:     true,
			Rating:      dec("4.6"),
			ReviewCount: 89,
			Tags:        []string{"youtube", "video", "music"},
			Features:    []string{"Không quảng cáo", "Tải offline", "Phát nhạc nền", "YouTube Music Premium"},
		},
		{
			Name:             "Adobe Creative Cloud",
			Slug:             "adobe-creative-cloud",
			Description:      "Bộ công cụ thiết kế chuyên nghiệp từ Adobe bao gồm Photoshop, Illustrator, Premiere Pro và nhiều ứng dụng khác.",
			ShortDescription: "Bộ công cụ thiết kế chuyên nghiệp",
			Price:            dec("299000"),
			ImageURL:         "https://images.unsplash.com/photo-1626785774573-4b799315345d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1626785774573-4b799315345d?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
				"https://images.unsplash.com/photo-1558655146-364adaf1fcc9?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
				"https://images.unsplash.com/photo-1611224923853-80b023f02d71?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
				"https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200",
			},
			CategoryID:  5,
			Featured:    true,
			InStock:     true,
			Rating:      dec("4.9"),
			ReviewCount: 256,
			Tags:        []string{"design", "adobe", "creative"},
			Features:    []string{"Photoshop CC", "Illustrator CC", "Premiere Pro", "After Effects", "Cloud Storage 100GB"},
		},
		{
			Name:             "Microsoft Office 365",
			Slug:             "microsoft-office-365",
			Description:      "Bộ công cụ văn phòng hoàn chỉnh từ Microsoft bao gồm Word, Excel, PowerPoint, Outlook và OneDrive.",
			ShortDescription: "Bộ công cụ văn phòng hoàn chỉnh",
			Price:            dec("199000"),
			ImageURL:         "https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails:       []string{},
			CategoryID:       2,
			Featured:         true,
			InStock:          true,
			Rating:           dec("4.7"),
			ReviewCount:      342,
			Tags:             []string{"office", "microsoft", "productivity"},
			Features:         []string{"Word, Excel, PowerPoint", "Outlook Email", "OneDrive 1TB", "Teams", "Cập nhật tự động"},
		},
		{
			Name:             "Spotify Premium 1 tháng",
			Slug:             "spotify-premium-1-thang",
			Description:      "Nghe nhạc chất lượng cao không quảng cáo với thư viện hơn 100 triệu bài hát.",
			ShortDescription: "Nghe nhạc chất lượng cao, không quảng cáo",
			Price:            dec("59000"),
			ImageURL:         "https://images.unsplash.com/photo-1611339555312-e607c8352fd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails:       []string{},
			CategoryID:       1,
			InStock:          true,
			Rating:           dec("4.5"),
			ReviewCount:      167,
			Tags:             []string{"music", "streaming", "audio"},
			Features:         []string{"Chất lượng 320kbps", "Tải offline", "Không quảng cáo", "Podcasts độc quyền"},
		},
		{
			Name:             "Disney+ Premium",
			Slug:             "disney-plus-premium",
			Description:      "Xem phim Disney, Marvel, Star Wars và National Geographic với chất lượng 4K.",
			ShortDescription: "Xem phim Disney, Marvel, Star Wars",
			Price:            dec("89000"),
			ImageURL:         "https://images.unsplash.com/photo-1611162618071-b39a2ec055fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails:       []string{},
			CategoryID:       1,
			InStock:          true,
			Rating:           dec("4.4"),
			ReviewCount:      92,
			Tags:             []string{"disney", "marvel", "starwars"},
			Features:         []string{"Phim Disney Classic", "Marvel Universe", "Star Wars Saga", "National Geographic", "Chất lượng 4K"},
		},
		{
			Name:             "Canva Pro 1 năm",
			Slug:             "canva-pro-1-nam",
			Description:      "Công cụ thiết kế đồ họa trực tuyến mạnh mẽ với hàng triệu template, ảnh stock premium và tính năng AI.",
			ShortDescription: "Thiết kế đồ họa chuyên nghiệp",
			Price:            dec("390000"),
			SalePrice:        decPtr("299000"),
			ImageURL:         "https://images.unsplash.com/photo-1581291518633-83b4ebd1d83e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails:       []string{},
			CategoryID:       5,
			Featured:         true,
			InStock:          true,
			Rating:           dec("4.7"),
			ReviewCount:      178,
			Tags:             []string{"design", "graphics", "templates"},
			Features:         []string{"Premium templates", "AI Design tools", "Background remover", "Magic resize", "Brand kit"},
		},
		{
			Name:             "Grammarly Premium",
			Slug:             "grammarly-premium",
			Description:      "Trợ lý viết AI giúp cải thiện ngữ pháp, phong cách viết và tăng hiệu quả giao tiếp.",
			ShortDescription: "Trợ lý viết AI thông minh",
			Price:            dec("149000"),
			ImageURL:         "https://images.unsplash.com/photo-1456324504439-367cee3b3c32?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails:       []string{},
			CategoryID:       2,
			InStock:          true,
			Rating:           dec("4.6"),
			ReviewCount:      145,
			Tags:             []string{"writing", "ai", "productivity"},
			Features:         []string{"Grammar checking", "Style suggestions", "Plagiarism detection", "Tone detector", "Writing insights"},
		},
		{
			Name:             "Coursera Plus",
			Slug:             "coursera-plus",
			Description:      "Truy cập không giới hạn hơn 7,000 khóa học từ các trường đại học và tổ chức hàng đầu thế giới.",
			ShortDescription: "Học online không giới hạn",
			Price:            dec("499000"),
			SalePrice:        decPtr("399000"),
			ImageURL:         "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails:       []string{},
			CategoryID:       3,
			Featured:         true,
			InStock:          true,
			Rating:           dec("4.8"),
			ReviewCount:      223,
			Tags:             []string{"education", "courses", "certificates"},
			Features:         []string{"7,000+ courses", "University certificates", "Specializations", "Professional certificates", "Unlimited access"},
		},
		{
			Name:             "ChatGPT Plus",
			Slug:             "chatgpt-plus",
			Description:      "Phiên bản cao cấp của ChatGPT với GPT-4, tốc độ nhanh hơn và ưu tiên truy cập.",
			ShortDescription: "AI ChatGPT phiên bản nâng cao",
			Price:            dec("199000"),
			ImageURL:         "https://images.unsplash.com/photo-1677442136019-21780ecad995?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails:       []string{},
			CategoryID:       4,
			Featured:         true,
			InStock:          true,
			Rating:           dec("4.9"),
			ReviewCount:      312,
			Tags:             []string{"ai", "chatbot", "gpt"},
			Features:         []string{"GPT-4 access", "Faster response", "Priority access", "Advanced reasoning", "Creative writing"},
		},
		{
			Name:             "Figma Professional",
			Slug:             "figma-professional",
			Description:      "Công cụ thiết kế UI/UX hàng đầu cho team với tính năng collaboration và prototyping mạnh mẽ.",
			ShortDescription: "Thiết kế UI/UX chuyên nghiệp",
			Price:            dec("299000"),
			ImageURL:         "https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Thumbnails:       []string{},
			CategoryID:       5,
			InStock:          true,
			Rating:           dec("4.8"),
			ReviewCount:      189,
			Tags:             []string{"ui", "ux", "design", "prototyping"},
			Features:         []string{"Unlimited projects", "Team collaboration", "Advanced prototyping", "Design systems", "Developer handoff"},
		},
	}

	posts := []BlogPost{
		{
			Title:        "Top 10 công cụ AI tốt nhất cho năm 2024",
			Slug:         "top-10-cong-cu-ai-tot-nhat-2024",
			Excerpt:      "Khám phá những công cụ AI mạnh mẽ nhất đang thay đổi cách chúng ta làm việc, từ ChatGPT, Midjourney đến các ứng dụng AI trong thiết kế và lập trình...",
			Content:      "Trí tuệ nhân tạo đang revolutionize cách chúng ta làm việc và sáng tạo. Trong bài viết này, chúng ta sẽ khám phá 10 công cụ AI hàng đầu năm 2024...",
			ImageURL:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			CategoryName: "Công nghệ",
			ReadTime:     8,
			Featured:     true,
		},
		{
			Title:        "So sánh Netflix vs Disney+ vs Amazon Prime",
			Slug:         "so-sanh-netflix-disney-amazon-prime",
			Excerpt:      "Phân tích chi tiết các dịch vụ streaming hàng đầu để giúp bạn chọn lựa phù hợp...",
			Content:      "Các dịch vụ streaming ngày càng phổ biến tại Việt Nam. Hãy cùng so sánh 3 platform hàng đầu...",
			ImageURL:     "https://images.unsplash.com/photo-1611162617474-5b21e879e113?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			CategoryName: "Giải trí",
			ReadTime:     6,
		},
		{
			Title:        "10 mẹo tăng hiệu suất với Microsoft Office 365",
			Slug:         "10-meo-tang-hieu-suat-microsoft-office-365",
			Excerpt:      "Khám phá những tính năng ẩn và mẹo sử dụng Office 365 hiệu quả hơn...",
			Content:      "Microsoft Office 365 có rất nhiều tính năng hữu ích mà ít người biết đến...",
			ImageURL:     "https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			CategoryName: "Làm việc",
			ReadTime:     7,
		},
		{
			Title:        "Hướng dẫn mua game Steam giá rẻ",
			Slug:         "huong-dan-mua-game-steam-gia-re",
			Excerpt:      "Bí quyết săn sale Steam và những website uy tín bán key game giá tốt...",
			Content:      "Steam luôn có những đợt sale hấp dẫn. Đây là hướng dẫn chi tiết để bạn mua được game yêu thích với giá tốt nhất...",
			ImageURL:     "https://images.unsplash.com/photo-1542751371-adc38448a05e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			CategoryName: "Gaming",
			ReadTime:     5,
		},
		{
			Title:        "Adobe Creative Cloud cho người mới bắt đầu",
			Slug:         "adobe-creative-cloud-cho-nguoi-moi-bat-dau",
			Excerpt:      "Hướng dẫn từ A-Z sử dụng Photoshop, Illustrator và Premiere Pro...",
			Content:      "Adobe Creative Cloud là bộ công cụ thiết kế mạnh mẽ nhất hiện nay. Bài viết này sẽ hướng dẫn bạn từ những bước đầu tiên...",
			ImageURL:     "https://images.unsplash.com/photo-1626785774573-4b799315345d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			CategoryName: "Thiết kế",
			ReadTime:     10,
		},
	}

	for i := range products {
		products[i].CreatedAt = seedBase.Add(-time.Duration(i) * 24 * time.Hour)
	}
	for i := range posts {
		posts[i].PublishedAt = seedBase.Add(-time.Duration(i) * 24 * time.Hour)
	}

	return seedData{Categories: categories, Products: products, BlogPosts: posts}
}
