package service

// seedCatalog is the built-in trusted set loaded by Populate,
// tier then category then domains
var seedCatalog = map[string]map[string][]string{
	"tier1": {
		"Banking & Finance": {
			"chase.com", "bankofamerica.com", "wellsfargo.com", "citibank.com",
			"usbank.com", "capitalone.com", "discover.com", "americanexpress.com",
			"paypal.com", "venmo.com", "stripe.com", "square.com",
		},
		"Government": {
			"usa.gov", "irs.gov", "ssa.gov", "cdc.gov", "fda.gov", "nasa.gov",
			"whitehouse.gov", "state.gov", "treasury.gov", "defense.gov",
		},
		"Major Tech Companies": {
			"google.com", "microsoft.com", "apple.com", "amazon.com",
			"facebook.com", "twitter.com", "linkedin.com", "github.com",
			"youtube.com", "instagram.com", "whatsapp.com", "zoom.us",
			"netflix.com", "spotify.com", "reddit.com", "wikipedia.org",
		},
	},
	"tier2": {
		"Education": {
			"mit.edu", "stanford.edu", "harvard.edu", "berkeley.edu",
			"princeton.edu", "yale.edu", "columbia.edu", "cornell.edu",
			"coursera.org", "edx.org", "khanacademy.org", "udemy.com",
		},
		"News & Media": {
			"bbc.com", "cnn.com", "nytimes.com", "theguardian.com",
			"washingtonpost.com", "reuters.com", "apnews.com", "bloomberg.com",
			"wsj.com", "npr.org", "forbes.com", "economist.com",
		},
		"E-commerce": {
			"ebay.com", "walmart.com", "target.com", "bestbuy.com",
			"homedepot.com", "costco.com", "alibaba.com", "etsy.com",
			"shopify.com", "wayfair.com",
		},
		"Cloud Services": {
			"aws.amazon.com", "azure.microsoft.com", "cloud.google.com",
			"digitalocean.com", "heroku.com", "cloudflare.com",
			"dropbox.com", "box.com", "onedrive.com", "icloud.com",
		},
	},
	"tier3": {
		"Development Tools": {
			"stackoverflow.com", "gitlab.com", "bitbucket.org",
			"npmjs.com", "pypi.org", "docker.com", "kubernetes.io",
			"jenkins.io", "jetbrains.com", "visualstudio.com",
		},
		"Communication": {
			"slack.com", "discord.com", "telegram.org", "skype.com",
			"teams.microsoft.com", "webex.com",
		},
		"Productivity": {
			"notion.so", "trello.com", "asana.com", "monday.com",
			"airtable.com", "evernote.com", "figma.com",
		},
	},
}
