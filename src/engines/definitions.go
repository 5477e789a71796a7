package engines

// registry is the ordered engine table. Detect scans it front to back and
// stops at the first matching DetectionPattern, so an entry whose pattern can
// occur inside another engine's URLs must come after that engine.
var registry = []Definition{
	{
		ID:               "scholar",
		Name:             "Google Scholar",
		Icon:             "fas fa-graduation-cap",
		Color:            "#4285F4",
		SearchURL:        "https://scholar.google.com/scholar?q={query}",
		QueryParam:       "q",
		DetectionPattern: "scholar.google.com",
		Aliases:          []string{"gs"},
	},
	{
		ID:                "google",
		Name:              "Google",
		Icon:              "fab fa-google",
		Color:             "#4285F4",
		SearchURL:         "https://www.google.com/search?q={query}",
		ImageSearchURL:    "https://www.google.com/search?q={query}&tbm=isch",
		QueryParam:        "q",
		DetectionPattern:  "google.com/search",
		VisibleByDefault:  true,
		ShowInContextMenu: true,
		HasCopyButton:     true,
		Aliases:           []string{"g"},
	},
	{
		ID:                "brave",
		Name:              "Brave",
		Icon:              "fas fa-shield-alt",
		Color:             "#FB542B",
		SearchURL:         "https://search.brave.com/search?q={query}",
		ImageSearchURL:    "https://search.brave.com/images?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "search.brave.com",
		VisibleByDefault:  true,
		ShowInContextMenu: true,
		Aliases:           []string{"br"},
	},
	{
		ID:                "duckduckgo",
		Name:              "DuckDuckGo",
		Icon:              "fab fa-d-and-d",
		Color:             "#DE5833",
		SearchURL:         "https://duckduckgo.com/?q={query}",
		ImageSearchURL:    "https://duckduckgo.com/?q={query}&iax=images&ia=images",
		QueryParam:        "q",
		DetectionPattern:  "duckduckgo.com",
		VisibleByDefault:  true,
		ShowInContextMenu: true,
		HasCopyButton:     true,
		Aliases:           []string{"ddg", "d"},
	},
	{
		ID:                "bing",
		Name:              "Bing",
		Icon:              "fab fa-microsoft",
		Color:             "#008373",
		SearchURL:         "https://www.bing.com/search?q={query}",
		ImageSearchURL:    "https://www.bing.com/images/search?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "bing.com",
		VisibleByDefault:  true,
		ShowInContextMenu: true,
		HasCopyButton:     true,
		Aliases:           []string{"b"},
	},
	{
		ID:                "amazon",
		Name:              "Amazon",
		Icon:              "fab fa-amazon",
		Color:             "#FF9900",
		SearchURL:         "https://www.amazon.{domain}/s?k={query}",
		QueryParam:        "k",
		DetectionPattern:  "amazon.",
		UsesDomain:        DomainAmazon,
		VisibleByDefault:  true,
		ShowInContextMenu: true,
		Aliases:           []string{"a", "amz"},
	},
	{
		ID:                "youtube",
		Name:              "YouTube",
		Icon:              "fab fa-youtube",
		Color:             "#FF0000",
		SearchURL:         "https://www.youtube.com/results?search_query={query}",
		QueryParam:        "search_query",
		DetectionPattern:  "youtube.com/results",
		VisibleByDefault:  true,
		ShowInContextMenu: true,
		Aliases:           []string{"yt"},
	},
	{
		ID:                "wikipedia",
		Name:              "Wikipedia",
		Icon:              "fab fa-wikipedia-w",
		Color:             "#000000",
		SearchURL:         "https://es.wikipedia.org/wiki/Special:Search?search={query}",
		QueryParam:        "search",
		DetectionPattern:  "wikipedia.org",
		VisibleByDefault:  true,
		ShowInContextMenu: true,
		Aliases:           []string{"w", "wiki"},
	},
	{
		ID:                "twitter",
		Name:              "Twitter",
		Icon:              "fab fa-twitter",
		Color:             "#1DA1F2",
		SearchURL:         "https://twitter.com/search?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "twitter.com/search",
		VisibleByDefault:  true,
		ShowInContextMenu: true,
		Aliases:           []string{"tw", "x"},
	},
	{
		ID:                "github",
		Name:              "GitHub",
		Icon:              "fab fa-github",
		Color:             "#333333",
		SearchURL:         "https://github.com/search?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "github.com/search",
		ShowInContextMenu: true,
		Aliases:           []string{"gh"},
	},
	{
		ID:               "gitlab",
		Name:             "GitLab",
		Icon:             "fab fa-gitlab",
		Color:            "#FC6D26",
		SearchURL:        "https://gitlab.com/search?search={query}",
		QueryParam:       "search",
		DetectionPattern: "gitlab.com/search",
		Aliases:          []string{"gl"},
	},
	{
		ID:                "stackoverflow",
		Name:              "Stack Overflow",
		Icon:              "fab fa-stack-overflow",
		Color:             "#F58025",
		SearchURL:         "https://stackoverflow.com/search?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "stackoverflow.com/search",
		ShowInContextMenu: true,
		Aliases:           []string{"so"},
	},
	{
		ID:                "reddit",
		Name:              "Reddit",
		Icon:              "fab fa-reddit",
		Color:             "#FF4500",
		SearchURL:         "https://www.reddit.com/search/?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "reddit.com/search",
		ShowInContextMenu: true,
		Aliases:           []string{"r"},
	},
	{
		ID:               "pinterest",
		Name:             "Pinterest",
		Icon:             "fab fa-pinterest",
		Color:            "#E60023",
		SearchURL:        "https://www.pinterest.com/search/pins/?q={query}",
		QueryParam:       "q",
		DetectionPattern: "pinterest.com/search",
		Aliases:          []string{"pin"},
	},
	{
		ID:               "startpage",
		Name:             "Startpage",
		Icon:             "fas fa-search",
		Color:            "#5B7FDE",
		SearchURL:        "https://www.startpage.com/do/search?q={query}",
		ImageSearchURL:   "https://www.startpage.com/sp/search?cat=images&q={query}",
		QueryParam:       "q",
		DetectionPattern: "startpage.com",
		Aliases:          []string{"sp"},
	},
	{
		ID:               "ecosia",
		Name:             "Ecosia",
		Icon:             "fas fa-tree",
		Color:            "#4CAF50",
		SearchURL:        "https://www.ecosia.org/search?q={query}",
		ImageSearchURL:   "https://www.ecosia.org/images?q={query}",
		QueryParam:       "q",
		DetectionPattern: "ecosia.org",
		Aliases:          []string{"eco"},
	},
	{
		ID:               "qwant",
		Name:             "Qwant",
		Icon:             "fas fa-search",
		Color:            "#5C97FF",
		SearchURL:        "https://www.qwant.com/?q={query}",
		ImageSearchURL:   "https://www.qwant.com/?q={query}&t=images",
		QueryParam:       "q",
		DetectionPattern: "qwant.com",
		Aliases:          []string{"qw"},
	},
	{
		ID:               "yandex",
		Name:             "Yandex",
		Icon:             "fas fa-search",
		Color:            "#FF0000",
		SearchURL:        "https://yandex.com/search/?text={query}",
		ImageSearchURL:   "https://yandex.com/images/search?text={query}",
		QueryParam:       "text",
		DetectionPattern: "yandex.com",
		Aliases:          []string{"ya"},
	},
	{
		ID:               "baidu",
		Name:             "Baidu",
		Icon:             "fas fa-search",
		Color:            "#2319DC",
		SearchURL:        "https://www.baidu.com/s?wd={query}",
		ImageSearchURL:   "https://image.baidu.com/search/index?tn=baiduimage&word={query}",
		QueryParam:       "wd",
		DetectionPattern: "baidu.com",
		Aliases:          []string{"bd"},
	},
	{
		ID:               "ebay",
		Name:             "eBay",
		Icon:             "fas fa-shopping-cart",
		Color:            "#0064D2",
		SearchURL:        "https://www.ebay.com/sch/i.html?_nkw={query}",
		QueryParam:       "_nkw",
		DetectionPattern: "ebay.com",
		Aliases:          []string{"eb"},
	},
	{
		ID:               "aliexpress",
		Name:             "AliExpress",
		Icon:             "fas fa-shopping-bag",
		Color:            "#FF6900",
		SearchURL:        "https://www.aliexpress.com/wholesale?SearchText={query}",
		QueryParam:       "SearchText",
		DetectionPattern: "aliexpress.com",
		Aliases:          []string{"ali"},
	},
	{
		ID:               "etsy",
		Name:             "Etsy",
		Icon:             "fas fa-store",
		Color:            "#F45800",
		SearchURL:        "https://www.etsy.com/search?q={query}",
		QueryParam:       "q",
		DetectionPattern: "etsy.com/search",
	},
	{
		ID:               "archive",
		Name:             "Internet Archive",
		Icon:             "fas fa-archive",
		Color:            "#000000",
		SearchURL:        "https://archive.org/search?query={query}",
		QueryParam:       "query",
		DetectionPattern: "archive.org/search",
		Aliases:          []string{"ia"},
	},
	{
		ID:               "wolframalpha",
		Name:             "Wolfram Alpha",
		Icon:             "fas fa-calculator",
		Color:            "#DD1100",
		SearchURL:        "https://www.wolframalpha.com/input?i={query}",
		QueryParam:       "i",
		DetectionPattern: "wolframalpha.com",
		Aliases:          []string{"wa"},
	},
	{
		// Path-style: the query is the segment after /search/.
		ID:               "spotify",
		Name:             "Spotify",
		Icon:             "fab fa-spotify",
		Color:            "#1DB954",
		SearchURL:        "https://open.spotify.com/search/{query}",
		DetectionPattern: "open.spotify.com/search",
		Aliases:          []string{"sf"},
	},
	{
		ID:               "soundcloud",
		Name:             "SoundCloud",
		Icon:             "fab fa-soundcloud",
		Color:            "#FF3300",
		SearchURL:        "https://soundcloud.com/search?q={query}",
		QueryParam:       "q",
		DetectionPattern: "soundcloud.com/search",
		Aliases:          []string{"sc"},
	},
	{
		ID:               "vimeo",
		Name:             "Vimeo",
		Icon:             "fab fa-vimeo",
		Color:            "#162221",
		SearchURL:        "https://vimeo.com/search?q={query}",
		QueryParam:       "q",
		DetectionPattern: "vimeo.com/search",
	},
	{
		ID:               "linkedin",
		Name:             "LinkedIn",
		Icon:             "fab fa-linkedin",
		Color:            "#0077B5",
		SearchURL:        "https://www.linkedin.com/search/results/all/?keywords={query}",
		QueryParam:       "keywords",
		DetectionPattern: "linkedin.com/search",
		Aliases:          []string{"li"},
	},
	{
		ID:               "tiktok",
		Name:             "TikTok",
		Icon:             "fab fa-tiktok",
		Color:            "#000000",
		SearchURL:        "https://www.tiktok.com/search?q={query}",
		QueryParam:       "q",
		DetectionPattern: "tiktok.com/search",
		Aliases:          []string{"tt"},
	},
	{
		ID:                "perplexity",
		Name:              "Perplexity",
		Icon:              "fas fa-brain",
		Color:             "#20808D",
		SearchURL:         "https://www.perplexity.ai/search?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "perplexity.ai",
		ShowInContextMenu: true,
		Aliases:           []string{"pp"},
	},
	{
		ID:                "kagi",
		Name:              "Kagi",
		Icon:              "fas fa-search",
		Color:             "#FF6A00",
		SearchURL:         "https://kagi.com/search?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "kagi.com/search",
		ShowInContextMenu: true,
		Aliases:           []string{"k"},
	},
	{
		ID:                "searx",
		Name:              "SearX",
		Icon:              "fas fa-search",
		Color:             "#3050FF",
		SearchURL:         "https://searx.be/search?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "searx.be",
		ShowInContextMenu: true,
		Aliases:           []string{"sx"},
	},
	{
		ID:                "you",
		Name:              "You.com",
		Icon:              "fas fa-search",
		Color:             "#00B8D9",
		SearchURL:         "https://you.com/search?q={query}",
		QueryParam:        "q",
		DetectionPattern:  "you.com/search",
		ShowInContextMenu: true,
	},
}
