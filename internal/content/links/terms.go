package links

// The classifier's validity gate is driven entirely by these tables.
// Matching is case-insensitive substring containment; keep every entry
// lowercase.

// RejectTitleTerms disqualifies a candidate whose title contains any entry.
// Grouped by the kind of page furniture each entry catches.
var RejectTitleTerms = []string{
	// navigation and UI elements
	"home", "about", "contact", "login", "register", "sign up", "sign in",
	"search", "menu", "navigation", "footer", "header", "sidebar",
	"read more", "read original article", "click here", "learn more",
	"subscribe", "newsletter", "advertisement", "advertise",

	// social platforms
	"facebook", "twitter", "linkedin", "youtube", "instagram", "whatsapp",
	"telegram", "tiktok", "snapchat", "pinterest",

	// contact and company boilerplate
	"house-", "road-", "floor", "dhaka", "bangladesh",
	"info@", "@", "phone", "tel:", "fax:", "email:",
	"copyright", "©", "all rights reserved", "privacy",
	"terms", "contact us", "about us", "careers", "jobs",

	// generic UI actions
	"download", "upload", "share", "print", "bookmark", "favorite",
	"like", "comment", "reply", "follow", "unfollow",

	// document and media file markers
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".jpg", ".jpeg", ".png", ".gif", ".mp4", ".mp3", ".avi",

	// site infrastructure
	"cookie", "policy", "disclaimer", "sitemap", "rss", "feed",
	"archive", "category", "tag", "author", "date", "time",
}

// RejectPathTerms disqualifies a candidate whose URL path contains any entry.
var RejectPathTerms = []string{
	"/login", "/register", "/signup", "/signin", "/account",
	"/cart", "/checkout", "/payment", "/billing",
	"/admin", "/dashboard", "/panel", "/control",
	"/api/", "/ajax/", "/json/", "/xml/",
	"/assets/", "/css/", "/js/", "/images/", "/uploads/",
	"/download/", "/upload/", "/media/",
	"/search", "/filter", "/sort", "/page/",
	"/tag/", "/category/", "/author/", "/date/",
	"/rss", "/feed", "/sitemap", "/robots.txt",
}

// AcceptTitleTerms mark a title as news-like regardless of its length.
var AcceptTitleTerms = []string{
	// action words
	"announces", "launches", "reports", "reveals", "introduces",
	"celebrates", "partners", "expands", "invests", "acquires",
	"appoints", "awards", "recognizes", "develops", "innovates",
	"challenges", "opportunities", "growth", "development",
	"releases", "unveils", "discloses", "confirms",
	"denies", "responds", "comments", "states", "declares",

	// industry and business terms
	"industry", "market", "trade", "export", "import",
	"technology", "innovation", "sustainability", "compliance",
	"manufacturing", "production", "supply chain", "logistics",
	"investment", "funding", "financing", "revenue", "profit",
	"partnership", "collaboration", "agreement", "contract",

	// recency indicators
	"today", "yesterday", "this week", "this month", "this year",
	"latest", "recent", "new", "updated", "breaking",

	// event indicators
	"event", "conference", "summit", "meeting", "workshop",
	"exhibition", "fair", "show", "presentation", "seminar",
}

// AcceptPathTerms mark a URL path as article-like. "/202" covers four-digit
// year segments for the current decade.
var AcceptPathTerms = []string{
	"/article/", "/news/", "/story/", "/post/", "/blog/",
	"/202",
	"/jan/", "/feb/", "/mar/", "/apr/", "/may/", "/jun/",
	"/jul/", "/aug/", "/sep/", "/oct/", "/nov/", "/dec/",
}

// BoilerplateTerms score extracted article bodies for contact-page and
// legal-text furniture. The extractor rejects bodies with more than three
// distinct hits.
var BoilerplateTerms = []string{
	"house-", "road-", "floor", "dhaka", "bangladesh",
	"info@", "phone:", "tel:", "fax:", "email:",
	"copyright", "©", "all rights reserved", "privacy",
	"terms", "contact us", "about us", "advertisement",
}
