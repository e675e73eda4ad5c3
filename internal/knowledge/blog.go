package knowledge

import "github.com/bunniesplumbing/chat-gateway/internal/model/blog"

// CompanyName and CompanyLocation identify the business in generated
// content.
const (
	CompanyName     = "Bunnies Plumbing & Trenchless Technology"
	CompanyLocation = "Morgan Hill, CA"
)

// BlogTopics seed the post generator. Once every topic has been published
// the generator asks the model for a fresh one instead.
var BlogTopics = []string{
	"Signs Your Sewer Line Needs Replacement",
	"Trenchless Sewer Repair vs Traditional Excavation: Which Is Right for You?",
	"What Causes Slow Drains and How to Fix Them",
	"How Long Does a Water Heater Last in the Bay Area?",
	"Why Is My Water Bill So High? Hidden Leak Warning Signs",
	"What to Do When Your Toilet Keeps Clogging",
	"Gas Leak Safety: What Every Homeowner Should Know",
	"How Hydro Jetting Clears Drains That Snaking Can't",
	"Crawl Space Plumbing Problems Most Homeowners Miss",
	"Tankless vs Tank Water Heaters: Pros and Cons",
	"How to Prepare Your Plumbing for Winter in Morgan Hill",
	"What Is Pipe Bursting and When Is It the Best Option?",
	"Orangeburg Pipe: Why Homes Built Before 1972 Are at Risk",
	"Tree Roots in Your Sewer Line: Causes, Signs, and Solutions",
	"When Is a Plumbing Problem an Emergency?",
	"How Much Does Trenchless Sewer Replacement Cost?",
	"DIY Drain Cleaning: What Works and What Makes It Worse",
	"What to Expect During a Sewer Camera Inspection",
	"Why Choose a Licensed Plumber for Gas Line Work",
	"Repiping an Older Home: When Copper and Galvanized Pipes Fail",
}

// SitePages are the internal pages generated posts must link to. URLs are
// relative to the posts/ directory where articles are published.
var SitePages = map[string]blog.SitePage{
	"contact": {
		URL: "../contact.html",
		Anchors: []string{
			"contact us today",
			"get in touch with our team",
			"reach out to us",
			"book a service appointment",
			"schedule a service",
		},
		UseWhen: "CTA, booking, getting help, asking questions",
	},
	"services": {
		URL: "../services.html",
		Anchors: []string{
			"view all our plumbing services",
			"explore our full range of services",
			"our professional plumbing services",
			"see what services we offer",
		},
		UseWhen: "mentioning multiple services, general service overview",
	},
	"trenchless": {
		URL: "../trenchless.html",
		Anchors: []string{
			"learn more about trenchless technology",
			"our trenchless sewer repair process",
			"trenchless pipe replacement",
			"see how trenchless works",
		},
		UseWhen: "trenchless, pipe bursting, CIPP, pipe lining, no-dig repair",
	},
	"estimate": {
		URL: "../estimate.html",
		Anchors: []string{
			"get a free estimate",
			"request your free quote",
			"use our free estimate calculator",
			"check pricing for your project",
		},
		UseWhen: "pricing, cost, quotes, how much does it cost",
	},
	"about": {
		URL: "../about.html",
		Anchors: []string{
			"learn more about our team",
			"about Bunnies Plumbing",
			"our experienced team",
			"why homeowners trust us",
		},
		UseWhen: "company credibility, team expertise, trust, experience",
	},
	"reviews": {
		URL: "../reviews.html",
		Anchors: []string{
			"read what our customers say",
			"see our 126+ five-star reviews",
			"check out our customer reviews",
		},
		UseWhen: "social proof, customer satisfaction, testimonials, trust",
	},
	"faq": {
		URL: "../faq.html",
		Anchors: []string{
			"check our FAQ page",
			"find answers to common questions",
			"read our frequently asked questions",
		},
		UseWhen: "common questions, general plumbing questions",
	},
	"gallery": {
		URL: "../gallery.html",
		Anchors: []string{
			"see our project gallery",
			"view real project photos",
			"browse our completed work",
		},
		UseWhen: "examples of work, before/after, project photos",
	},
}
