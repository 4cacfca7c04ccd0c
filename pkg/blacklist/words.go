package blacklist

// reserved holds names that collide with system accounts, routes, roles and
// well-known services.
var reserved = []string{
	"admin", "administrator", "root", "superuser", "sudo", "sysadmin",
	"system", "moderator", "owner", "staff", "support", "helpdesk",
	"webmaster", "postmaster", "hostmaster", "noreply", "no-reply",
	"mailer-daemon", "daemon", "nobody", "anonymous", "null", "undefined",
	"localhost", "security", "abuse", "phishing", "official", "verified",
	"login", "logout", "signin", "signout", "signup", "register",
	"password", "settings", "dashboard", "billing", "invoice", "checkout",
	"webhook", "callback", "oauth", "graphql", "healthz", "metrics",
	"static", "assets", "uploads", "download", "robots", "sitemap",
	"favicon", "wellknown", "well-known", "privacy", "terms", "legal",
	"copyright", "trademark", "everyone", "channel", "broadcast",
}

// profanity holds common English profanity and sexual terms.
var profanity = []string{
	"ass", "asshole", "bastard", "bitch", "bollocks", "boob", "bullshit",
	"cock", "crap", "cunt", "damn", "dick", "dildo", "douche", "fuck",
	"jerkoff", "jizz", "milf", "penis", "piss", "porn", "prick", "pussy",
	"rape", "retard", "scrotum", "sex", "shit", "slut", "tits", "twat",
	"vagina", "wank", "whore",
}
