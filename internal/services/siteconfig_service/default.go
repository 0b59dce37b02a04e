package services

import "art_academy/internal/domain/models"

const (
	defaultPhone    = "966501234567"
	academyInstr    = "أحمد صادق"
	academyInstrEn  = "Ahmed Sadek"
	currencyRiyal   = "ريال"
	sampleImageOne  = "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=500&fit=crop"
	sampleImageTwo  = "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=500&h=500&fit=crop"
	sampleImageDraw = "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=500&h=500&fit=crop"
)

// Default returns a fresh copy of the built-in configuration document.
// Every call allocates, so callers may modify the result freely.
func Default() models.SiteConfiguration {
	return models.SiteConfiguration{
		General: models.GeneralSettings{
			SiteName:      "أكاديمية ميمو للرسم",
			SiteNameEn:    "MEMO Art Academy",
			Description:   "تعلم فن الرسم والإبداع مع أفضل المدربين المحترفين",
			DescriptionEn: "Learn art and creativity with the best professional trainers",
			Logo:          "/1.png",
			ShowLogo:      true,
			PhoneNumber:   defaultPhone,
		},
		Sections: []models.LinkEntry{
			section("courses", "الدورات التدريبية", "Training Courses", "BookOpen", "blue"),
			section("instructors", "المدربون", "Instructors", "Users", "green"),
			section("gallery", "معرض الأعمال", "Gallery", "Image", "purple"),
			section("techniques", "تقنيات الرسم", "Drawing Techniques", "PenTool", "orange"),
			section("certificates", "الشهادات", "Certificates", "Award", "yellow"),
			section("schedule", "الجدول الزمني", "Schedule", "Calendar", "red"),
		},
		SocialMedia: []models.LinkEntry{
			social("instagram", "إنستغرام", "Instagram", "Instagram", "https://instagram.com/memoacademy", "text-pink-600", "bg-gradient-to-br from-purple-400 to-pink-400", true),
			social("facebook", "فيسبوك", "Facebook", "Facebook", "https://facebook.com/memoacademy", "text-white", "bg-blue-600", true),
			social("youtube", "يوتيوب", "YouTube", "YouTube", "https://youtube.com/@memoacademy", "text-white", "bg-red-600", true),
			social(models.SocialChatID, "واتساب", "WhatsApp", "WhatsApp", "https://wa.me/"+defaultPhone, "text-white", "bg-green-500", true),
			social("linkedin", "لينكد إن", "LinkedIn", "LinkedIn", "https://linkedin.com/company/memoacademy", "text-white", "bg-blue-700", false),
			social("snapchat", "سناب شات", "Snapchat", "Snapchat", "https://snapchat.com/add/memoacademy", "text-white", "bg-yellow-400", false),
			social("tiktok", "تيك توك", "TikTok", "TikTok", "https://tiktok.com/@memoacademy", "text-white", "bg-black", false),
			social("telegram", "تيليجرام", "Telegram", "Telegram", "https://t.me/memoacademy", "text-white", "bg-blue-500", false),
			social("twitter", "تويتر (X)", "Twitter (X)", "TwitterX", "https://x.com/memoacademy", "text-white", "bg-black", false),
			social("email", "البريد الإلكتروني", "Email", "Mail", "mailto:info@memoacademy.com", "text-gray-600", "bg-gray-100", false),
			social(models.SocialCallID, "الهاتف", "Phone", "Phone", "tel:+966 50 123 4567", "text-green-700", "bg-green-50", false),
			social("discord", "ديسكورد", "Discord", "Discord", "https://discord.gg/memoacademy", "text-white", "bg-indigo-600", false),
			social("pinterest", "بينتريست", "Pinterest", "Pinterest", "https://pinterest.com/memoacademy", "text-white", "bg-red-500", false),
			social("reddit", "ريديت", "Reddit", "Reddit", "https://reddit.com/r/memoacademy", "text-white", "bg-orange-500", false),
			social("threads", "ثريدز", "Threads", "Threads", "https://threads.net/@memoacademy", "text-white", "bg-black", false),
			social("website", "الموقع الإلكتروني", "Website", "Globe", "https://memoacademy.com", "text-white", "bg-indigo-600", false),
			social(models.SocialVoiceChatID, "فايبر", "Viber", "Video", "viber://chat?number="+defaultPhone, "text-purple-600", "bg-purple-100", false),
		},
		Courses: []models.CourseView{
			{
				ID:            1,
				Title:         "أساسيات الرسم للمبتدئين",
				TitleEn:       "Drawing Fundamentals for Beginners",
				Description:   "تعلم أساسيات الرسم من الصفر مع التركيز على التقنيات الأساسية والمهارات الضرورية",
				DescriptionEn: "Learn drawing fundamentals from scratch with focus on basic techniques and essential skills",
				Duration:      "4 أسابيع",
				DurationEn:    "4 Weeks",
				Level:         string(models.SkillLevelBeginner),
				LevelEn:       "Beginner",
				Price:         299,
				Currency:      currencyRiyal,
				ShowPrice:     true,
				Image:         "/course-basics.jpg",
				Features:      []string{"تعلم أساسيات الخطوط والأشكال", "تقنيات التظليل والإضاءة", "رسم الطبيعة الصامتة", "مشاريع عملية متدرجة"},
				FeaturesEn:    []string{"Learn basic lines and shapes", "Shading and lighting techniques", "Still life drawing", "Progressive practical projects"},
				Instructor:    academyInstr,
				InstructorEn:  academyInstrEn,
				Category:      "رسم تقليدي",
				CategoryEn:    "Traditional Drawing",
				EnrollmentURL: "#enroll-basics",
				EnrollViaChat: true,
				Visible:       true,
				Featured:      true,
			},
			{
				ID:            2,
				Title:         "الرسم الرقمي المتقدم",
				TitleEn:       "Advanced Digital Art",
				Description:   "احترف الرسم الرقمي باستخدام أحدث البرامج والتقنيات المتطورة",
				DescriptionEn: "Master digital art using the latest software and advanced techniques",
				Duration:      "6 أسابيع",
				DurationEn:    "6 Weeks",
				Level:         string(models.SkillLevelAdvanced),
				LevelEn:       "Advanced",
				Price:         499,
				Currency:      currencyRiyal,
				ShowPrice:     true,
				Image:         "/course-digital.jpg",
				Features:      []string{"استخدام برامج الرسم الاحترافية", "تقنيات الرسم الرقمي المتقدمة", "إنشاء أعمال فنية احترافية", "نصائح من خبراء المجال"},
				FeaturesEn:    []string{"Professional drawing software usage", "Advanced digital art techniques", "Creating professional artwork", "Expert tips and tricks"},
				Instructor:    academyInstr,
				InstructorEn:  academyInstrEn,
				Category:      "رسم رقمي",
				CategoryEn:    "Digital Art",
				EnrollmentURL: "#enroll-digital",
				EnrollViaChat: true,
				Visible:       true,
				Featured:      true,
			},
			{
				ID:            3,
				Title:         "فن البورتريه",
				TitleEn:       "Portrait Art",
				Description:   "تعلم رسم الوجوه والبورتريه بدقة واحترافية عالية",
				DescriptionEn: "Learn to draw faces and portraits with high precision and professionalism",
				Duration:      "5 أسابيع",
				DurationEn:    "5 Weeks",
				Level:         string(models.SkillLevelIntermediate),
				LevelEn:       "Intermediate",
				Price:         399,
				Currency:      currencyRiyal,
				ShowPrice:     false,
				Image:         "/course-portrait.jpg",
				Features:      []string{"تشريح الوجه ونسبه", "تقنيات رسم العيون والأنف", "التعبير والمشاعر", "البورتريه الواقعي"},
				FeaturesEn:    []string{"Face anatomy and proportions", "Eye and nose drawing techniques", "Expression and emotions", "Realistic portraiture"},
				Instructor:    academyInstr,
				InstructorEn:  academyInstrEn,
				Category:      "بورتريه",
				CategoryEn:    "Portrait",
				EnrollmentURL: "#enroll-portrait",
				EnrollViaChat: true,
				Visible:       true,
			},
		},
		Gallery: []models.GalleryView{
			artwork(1, "بورتريه واقعي بالقلم الرصاص", "Realistic Pencil Portrait",
				"عمل فني رائع يظهر مهارة عالية في رسم البورتريه الواقعي باستخدام القلم الرصاص",
				"Amazing artwork showing high skill in realistic portrait drawing using pencil",
				sampleImageOne, "بورتريه", "Portrait", "سارة أحمد", "Sarah Ahmed", "2024-12-15", true, models.SkillLevelAdvanced),
			artwork(2, "منظر طبيعي بالألوان المائية", "Watercolor Landscape",
				"لوحة جميلة تصور منظر طبيعي خلاب بتقنية الألوان المائية",
				"Beautiful painting depicting a stunning landscape using watercolor technique",
				sampleImageTwo, "مناظر طبيعية", "Landscape", "محمد علي", "Mohammed Ali", "2024-12-10", true, models.SkillLevelIntermediate),
			artwork(3, "رسم رقمي لشخصية كرتونية", "Digital Cartoon Character",
				"شخصية كرتونية مبدعة تم رسمها باستخدام برامج الرسم الرقمي",
				"Creative cartoon character drawn using digital art software",
				sampleImageDraw, "رسم رقمي", "Digital Art", "فاطمة خالد", "Fatima Khalid", "2024-12-08", false, models.SkillLevelIntermediate),
			artwork(4, "رسم تقليدي بالفحم", "Traditional Charcoal Drawing",
				"عمل فني تقليدي باستخدام الفحم يظهر تقنيات التظليل المتقدمة",
				"Traditional artwork using charcoal showing advanced shading techniques",
				sampleImageOne, "رسم تقليدي", "Traditional Drawing", "عبدالله محمد", "Abdullah Mohammed", "2024-12-05", false, models.SkillLevelBeginner),
			artwork(5, "رسم كاريكاتير مضحك", "Funny Caricature Drawing",
				"رسم كاريكاتير مبدع يظهر المهارة في المبالغة الفنية والتعبير",
				"Creative caricature drawing showing skill in artistic exaggeration and expression",
				sampleImageTwo, "رسم كاريكاتير", "Caricature", "نورا سعد", "Nora Saad", "2024-12-01", false, models.SkillLevelIntermediate),
			artwork(6, "فن تجريدي ملون", "Colorful Abstract Art",
				"عمل فني تجريدي يستخدم الألوان الزاهية والأشكال الهندسية",
				"Abstract artwork using vibrant colors and geometric shapes",
				sampleImageDraw, "فن تجريدي", "Abstract Art", "أحمد يوسف", "Ahmed Youssef", "2024-11-28", true, models.SkillLevelAdvanced),
		},
		Instructors: []models.InstructorView{
			{
				ID:            1,
				Name:          academyInstr,
				NameEn:        academyInstrEn,
				Title:         "مدرب الرسم الرقمي والتقليدي",
				TitleEn:       "Digital & Traditional Drawing Instructor",
				Image:         "/ahmed-sadek.png",
				ProfileURL:    "https://ahmed-sadek-751n.vercel.app/",
				Experience:    "8+ سنوات",
				ExperienceEn:  "8+ Years",
				Specialties:   []string{"الرسم الرقمي", "الرسم التقليدي", "البورتريه", "الرسوم المتحركة"},
				SpecialtiesEn: []string{"Digital Art", "Traditional Drawing", "Portrait", "Animation"},
				Rating:        4.9,
				StudentsCount: 150,
				Description:   "خبير في فنون الرسم الرقمي والتقليدي مع أكثر من 8 سنوات من الخبرة في التدريس والإبداع الفني",
				DescriptionEn: "Expert in digital and traditional drawing arts with over 8 years of experience in teaching and artistic creativity",
				Visible:       true,
			},
		},
		Location: models.Location{
			Visible:        true,
			Name:           "أكاديمية ميمو للفنون",
			NameEn:         "MEMO Art Academy",
			Address:        "الرياض، المملكة العربية السعودية",
			AddressEn:      "Riyadh, Saudi Arabia",
			Phone:          "+966 50 123 4567",
			WorkingHours:   "السبت - الخميس: 9:00 ص - 9:00 م",
			WorkingHoursEn: "Sat - Thu: 9:00 AM - 9:00 PM",
			Coordinates:    models.Coordinates{Lat: 24.7136, Lng: 46.6753},
			MapsURL:        "https://www.google.com/maps/place/Riyadh+Saudi+Arabia/@24.7135517,46.6752957,11z",
		},
		Pages: models.PageSettings{
			ShowInstructors:  true,
			ShowGallery:      true,
			ShowSocialMedia:  true,
			SocialMediaStyle: models.SocialMediaStyleIcons,
			ShowLocation:     true,
			ShowFooter:       true,
		},
	}
}

func section(id, name, nameEn, icon, color string) models.LinkEntry {
	return models.LinkEntry{
		ID:        id,
		Name:      name,
		NameEn:    nameEn,
		Icon:      icon,
		URL:       "#" + id,
		IconColor: "text-" + color + "-600",
		IconBg:    "bg-" + color + "-100",
		Visible:   true,
	}
}

func social(id, name, nameEn, icon, url, color, bg string, visible bool) models.LinkEntry {
	return models.LinkEntry{
		ID:        id,
		Name:      name,
		NameEn:    nameEn,
		Icon:      icon,
		URL:       url,
		IconColor: color,
		IconBg:    bg,
		Visible:   visible,
	}
}

func artwork(id int64, title, titleEn, desc, descEn, image, category, categoryEn, student, studentEn, date string, featured bool, level models.SkillLevel) models.GalleryView {
	return models.GalleryView{
		ID:            id,
		Title:         title,
		TitleEn:       titleEn,
		Description:   desc,
		DescriptionEn: descEn,
		Image:         image,
		Category:      category,
		CategoryEn:    categoryEn,
		StudentName:   student,
		StudentNameEn: studentEn,
		Instructor:    academyInstr,
		InstructorEn:  academyInstrEn,
		Date:          date,
		Featured:      featured,
		Visible:       true,
		Level:         string(level),
		LevelEn:       level.English(),
	}
}
