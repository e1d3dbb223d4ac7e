package content

import (
	"github.com/sifiratik/fidan/internal/domain"
	"github.com/sifiratik/fidan/internal/donation"
)

// Defaults returns the compiled-in copy of the page.
func Defaults() *Site {
	return &Site{
		Brand: Brand{
			Name:   "Sıfır Atık Vakfı",
			Logo:   "/static/img/sifiratikvakfiwhite.svg",
			Accent: "#00A870",
		},
		Nav: Nav{
			Links: []Link{
				{Label: "Hakkımızda", Href: "#about"},
				{Label: "Hizmetler", Href: "#services"},
				{Label: "Süreç", Href: "#steps"},
				{Label: "SSS", Href: "#faq"},
				{Label: "İletişim", Href: "#contact"},
			},
			DonateLabel:     "Bağış Yap",
			DonateHref:      "#donate",
			ScrollThreshold: 80,
		},
		Hero: Hero{
			Eyebrow:       "Tree donation",
			Title:         []string{"Bugün bir ağaç dik,", "yarına nefes bırak 🌱"},
			Highlight:     "ağaç",
			Lead:          "Bağışladığın her ağaç; karbonu dengeler, sel riskini azaltır ve yerel ekosistemleri güçlendirir. Sertifika ve dikim raporlarını hesabından takip edebilirsin.",
			AmountLabel:   "Kaç ağaç bağışlamak istersin?",
			PickSuffix:    "ağaç",
			UnitLabel:     "adet",
			QuickPicks:    append([]int(nil), donation.DefaultQuickPicks...),
			DefaultAmount: donation.DefaultAmount,
			Assurances:    []string{"3D Secure & Şeffaf Rapor", "Bağış sertifikası dâhil"},
			DonateSuffix:  "ağaç bağışla",
			ExploreLabel:  "Programı incele",
			ThanksFormat:  "Teşekkürler! %d ağaçlık bağış talebin alındı.",
			Trust:         []string{"12 bölgede dikim", "Yerli tür önceliği"},
			Image:         "/static/img/home/hero.jpg",
			ImageAlt:      "Forest",
			PlantedBadge:  "128,540+ ağaç dikildi",
			CarbonBadge:   "1 ağaç ≈ 22 kg CO₂/yıl",
		},
		About: About{
			Eyebrow: "Hakkımızda",
			Title:   []string{"Daha yeşil bir", "gelecek için birlikte"},
			Lead:    "Her bağışlanan ağaç; doğaya nefes, çocuklara gölge, geleceğe umut demektir. Hedefimiz milyonlarca fidanı toprakla buluşturmak.",
			Bullets: []string{
				"Her bağış doğrudan dikim alanlarına aktarılır",
				"Yerel halkla birlikte sürdürülebilir ormanlar",
			},
			ProgressLabel: "Hedefe Ulaşma",
			Progress:      85,
			Photo:         "/static/img/home/02.jpg",
			PhotoAlt:      "Toprak ve fide tutan eller",
			Sticker:       "/static/img/home/01.jpg",
			StickerTitle:  "Ağaç Dikimi",
			StickerText:   "Gönüllülerle birlikte ormanlar",
			Person: Person{
				Name:  "Samed Ağırbaş",
				Role:  "Sıfır Atık Vakfı Başkanı",
				Photo: "/static/img/home/samed-bey.png",
			},
			CTA: Link{Label: "Daha Fazla Keşfet", Href: "#explore"},
		},
		Services: ServicesSection{
			Eyebrow: "Hizmetlerimiz",
			Title:   "Gelecek Nesiller İçin Dünyayı Korumak",
			Lead:    "Doğayı koruyan hizmetlerimizle karbonu azaltıyor, toplulukları güçlendiriyoruz.",
			Items: []Service{
				{
					Icon:    "leaf",
					Title:   "Karbon Dengeleme",
					Desc:    "Karbon salımlarınızı yerli tür ağaçlandırma projeleriyle dengeliyoruz.",
					Bullets: []string{"Sertifikalı dikim", "Uydu izleme", "Yıllık bakım"},
					Image:   "/static/img/home/planting.png",
					Badge:   "Popüler",
				},
				{
					Icon:    "solar",
					Title:   "Enerji Danışmanlığı",
					Desc:    "Enerji verimliliği ve yenilenebilir çözümlerle karbon ayak izinizi küçültün.",
					Bullets: []string{"Enerji etüdü", "Güneş potansiyeli", "Teşvik rehberi"},
					Image:   "/static/img/home/sustan.png",
				},
				{
					Icon:    "recycle",
					Title:   "İklim Adaptasyonu",
					Desc:    "Toplum ve ekosistemlerin iklim risklerine uyum sürecini destekliyoruz.",
					Bullets: []string{"Yerel ortaklar", "Erozyon kontrolü", "Su verimliliği"},
					Image:   "/static/img/home/trash.png",
				},
			},
			Stats: []Stat{
				{Number: 200, Suffix: "+", Label: "Takım üyesi"},
				{Number: 45, Suffix: "+", Label: "Tamamlanan proje"},
				{Number: 20, Suffix: "+", Label: "Kazanılan ödül"},
				{Number: 50000, Suffix: "+", Label: "Dikilen ağaç"},
			},
			Transparency: "Şeffaf raporlama",
			Footnote:     "12 bölgede aktif, uydu görüntüleri ve saha raporlarıyla doğrulanır.",
		},
		Steps: StepsSection{
			Eyebrow: "4 adımlık süreç",
			Title:   []string{"Daha Yeşil Bir Gelecek İçin", "Karbon Ayak İzini Azalt"},
			Items: []Step{
				{Icon: "globe", Title: "Sürdürülebilir Çözümler", Desc: "Doğaya zarar vermeden yaşam için stratejiler."},
				{Icon: "solar", Title: "Yenilenebilir Enerji", Desc: "Güneş, rüzgar ve temiz enerji yatırımları."},
				{Icon: "recycle", Title: "Yeşil Yapılar", Desc: "Geri dönüşüm ve çevre dostu inşaat yöntemleri."},
				{Icon: "bag", Title: "Sürdürülebilir Tüketim", Desc: "Doğaya dost alışveriş ve yaşam tarzı."},
			},
		},
		FAQ: FAQSection{
			Eyebrow:  "Soru-cevap",
			Title:    "Ağaç bağışı hakkında merak ettiklerin 🌳",
			Lead:     "Ağaç dikimi sürecimiz şeffaf, güvenilir ve katılıma açık. İşte en sık sorulan sorular:",
			Image:    "/static/img/home/world.png",
			ImageAlt: "Elinde dünya tutan kişi",
			Entries: []domain.FAQEntry{
				{
					Question: "Bağışladığım ağaçlar nereye dikiliyor?",
					Answer:   "Bağışlarınız, yerel ormancılık müdürlükleri ve gönüllülerle iş birliği yapılarak belirlenen alanlarda toprakla buluşturuluyor. Hedefimiz erozyon riski yüksek bölgeler ve boş araziler.",
				},
				{
					Question: "Bağışımın gerçekten dikildiğini nasıl bilebilirim?",
					Answer:   "Her bağış sonrası size sertifika veriliyor ve dikim raporları çevrimiçi olarak hesabınızdan takip edilebiliyor. Ayrıca uydu görüntüleri ve saha fotoğraflarıyla şeffaflık sağlıyoruz.",
				},
				{
					Question: "Minimum kaç ağaç bağışlayabilirim?",
					Answer:   "Tek bir ağaç bağışında bulunabilirsiniz. Dilerseniz hızlı seçimlerden 5, 10 ya da 20 ağaç seçenekleri de mevcut.",
				},
				{
					Question: "Gönüllü olarak nasıl katılabilirim?",
					Answer:   "Sitemizdeki gönüllü formunu doldurarak dikim etkinliklerine katılabilirsiniz. Haftada birkaç saatle doğrudan katkı sağlayın.",
				},
			},
		},
		Footer: Footer{
			Contacts: []ContactCard{
				{Icon: "map-pin", Title: "Address", Desc: "2416 Mapleview Drive, FL 33634"},
				{Icon: "mail", Title: "E-mail Address", Desc: "admin.account@gmail.com"},
				{Icon: "phone", Title: "Contact Number", Desc: "+90 212 555 55 55"},
			},
			AboutTitle: "About Us",
			AboutText:  "We build reliable, scalable digital products, focused on measurable outcomes and long-term partnerships.",
			AboutCTA:   Link{Label: "Get Started", Href: "/contact"},
			LinksTitle: "Quick Links",
			QuickLinks: []Link{
				{Label: "About Us", Href: "/about"},
				{Label: "Our Mission", Href: "/mission"},
				{Label: "Meet The Teams", Href: "/team"},
				{Label: "Our Projects", Href: "/projects"},
				{Label: "Contact Us", Href: "/contact"},
			},
			NewsTitle: "Recent News",
			News: []NewsItem{
				{Title: "Go green and reduce carbon footprint", Date: "April 3, 2023", Image: "/static/img/news/leaf.jpg", Href: "/blog/go-green"},
				{Title: "Make a statement, support sustainability", Date: "April 3, 2023", Image: "/static/img/news/lake.jpg", Href: "/blog/statement"},
			},
			Newsletter: Newsletter{
				Title:       "Newsletter",
				Lead:        "Stay updated with product news and insights.",
				Placeholder: "Email Address",
				Submit:      "Submit",
				Thanks:      "Thanks! You are on the list.",
				Invalid:     "Please enter a valid email address.",
			},
			Copyright: "Copyright © %d All Rights Reserved.",
			LegalLinks: []Link{
				{Label: "Terms & Conditions", Href: "/terms"},
				{Label: "Privacy Policy", Href: "/privacy"},
				{Label: "Contact Us", Href: "/contact"},
			},
			BackToTop: "Back to top",
		},
	}
}
